package usecase_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCountrySource struct {
	calls     atomic.Int32
	gate      chan struct{}
	countries []entity.Country
	err       error
}

func (s *stubCountrySource) FetchCountries(ctx context.Context) ([]entity.Country, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entity.Country, len(s.countries))
	copy(out, s.countries)
	return out, nil
}

func liveCountries() []entity.Country {
	return []entity.Country{
		{Name: "Peru", Code: "PER"},
		{Name: "Chile", Code: "CHL"},
		{Name: "Norway", Code: "NOR"},
	}
}

func newCountryService(source *stubCountrySource) *usecase.CountryService {
	return usecase.NewCountryService(source, metrics.NewNopMetrics(), logger.NewNopLogger())
}

func TestCountries_SortedAndCached(t *testing.T) {
	source := &stubCountrySource{countries: liveCountries()}
	svc := newCountryService(source)

	countries, live := svc.Countries(context.Background())
	require.True(t, live)
	assert.Equal(t, []string{"Chile", "Norway", "Peru"}, countryNames(countries))

	countries[0].Name = "mutated"
	again, live := svc.Countries(context.Background())
	assert.True(t, live)
	assert.Equal(t, "Chile", again[0].Name)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCountries_ConcurrentCallersShareOneFetch(t *testing.T) {
	source := &stubCountrySource{countries: liveCountries(), gate: make(chan struct{})}
	svc := newCountryService(source)

	const callers = 10
	var wg sync.WaitGroup
	results := make([][]entity.Country, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = svc.Countries(context.Background())
		}()
	}

	for source.calls.Load() == 0 {
		runtime.Gosched()
	}
	close(source.gate)
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load())
	for _, r := range results {
		assert.Len(t, r, 3)
	}
}

func TestCountries_FallbackIsNotCached(t *testing.T) {
	source := &stubCountrySource{err: errors.New("upstream down")}
	svc := newCountryService(source)

	countries, live := svc.Countries(context.Background())
	assert.False(t, live)
	assert.Len(t, countries, 20)
	assert.Equal(t, usecase.FallbackCountries, countries)

	source.err = nil
	source.countries = liveCountries()
	countries, live = svc.Countries(context.Background())
	assert.True(t, live)
	assert.Len(t, countries, 3)
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestCountries_Invalidate(t *testing.T) {
	source := &stubCountrySource{countries: liveCountries()}
	svc := newCountryService(source)

	svc.Countries(context.Background())
	svc.Invalidate()
	source.countries = source.countries[:1]

	countries, live := svc.Countries(context.Background())
	assert.True(t, live)
	assert.Len(t, countries, 1)
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestFallbackCountries_Sorted(t *testing.T) {
	names := countryNames(usecase.FallbackCountries)
	assert.IsIncreasing(t, names)
}

func countryNames(countries []entity.Country) []string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return names
}
