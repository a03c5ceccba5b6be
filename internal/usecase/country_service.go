package usecase

import (
	"context"
	"sort"
	"sync"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

const countriesKey = "countries"

// FallbackCountries is served whenever the live country list cannot be fetched
var FallbackCountries = sortCountries([]entity.Country{
	{Name: "United States", Code: "USA", Flag: "🇺🇸"},
	{Name: "United Kingdom", Code: "GBR", Flag: "🇬🇧"},
	{Name: "Canada", Code: "CAN", Flag: "🇨🇦"},
	{Name: "Australia", Code: "AUS", Flag: "🇦🇺"},
	{Name: "Germany", Code: "DEU", Flag: "🇩🇪"},
	{Name: "France", Code: "FRA", Flag: "🇫🇷"},
	{Name: "Italy", Code: "ITA", Flag: "🇮🇹"},
	{Name: "Spain", Code: "ESP", Flag: "🇪🇸"},
	{Name: "Japan", Code: "JPN", Flag: "🇯🇵"},
	{Name: "Brazil", Code: "BRA", Flag: "🇧🇷"},
	{Name: "India", Code: "IND", Flag: "🇮🇳"},
	{Name: "China", Code: "CHN", Flag: "🇨🇳"},
	{Name: "Mexico", Code: "MEX", Flag: "🇲🇽"},
	{Name: "Thailand", Code: "THA", Flag: "🇹🇭"},
	{Name: "Greece", Code: "GRC", Flag: "🇬🇷"},
	{Name: "Turkey", Code: "TUR", Flag: "🇹🇷"},
	{Name: "Egypt", Code: "EGY", Flag: "🇪🇬"},
	{Name: "South Africa", Code: "ZAF", Flag: "🇿🇦"},
	{Name: "New Zealand", Code: "NZL", Flag: "🇳🇿"},
	{Name: "Netherlands", Code: "NLD", Flag: "🇳🇱"},
})

// CountryService caches the country reference list. Concurrent callers share a
// single in-flight fetch and the result is kept until Invalidate is called.
// Failed fetches are not cached.
type CountryService struct {
	source  repository.CountryRepository
	group   singleflight.Group
	mu      sync.RWMutex
	cached  []entity.Country
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewCountryService creates a new country service
func NewCountryService(source repository.CountryRepository, metrics *metrics.Metrics, logger logger.Logger) *CountryService {
	return &CountryService{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}
}

// Countries returns the country list and whether it came from the live source.
// When the fetch fails the fallback list is returned with live set to false.
func (s *CountryService) Countries(ctx context.Context) ([]entity.Country, bool) {
	if cached := s.load(); cached != nil {
		return cached, true
	}

	v, err, _ := s.group.Do(countriesKey, func() (interface{}, error) {
		if cached := s.load(); cached != nil {
			return cached, nil
		}

		s.metrics.CountryCacheMisses.Inc()
		// detached from the first caller: every waiter shares this fetch
		countries, err := s.source.FetchCountries(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		countries = sortCountries(countries)

		s.mu.Lock()
		s.cached = countries
		s.mu.Unlock()

		s.logger.Info("Loaded countries", "count", len(countries))
		return countries, nil
	})
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("fetch_countries").Inc()
		s.logger.Warn("Using fallback country list", "error", err)
		return cloneCountries(FallbackCountries), false
	}

	return cloneCountries(v.([]entity.Country)), true
}

// Invalidate drops the cached list so the next call fetches again
func (s *CountryService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	s.group.Forget(countriesKey)
}

func (s *CountryService) load() []entity.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil {
		return nil
	}
	return cloneCountries(s.cached)
}

func sortCountries(countries []entity.Country) []entity.Country {
	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

func cloneCountries(countries []entity.Country) []entity.Country {
	out := make([]entity.Country, len(countries))
	copy(out, countries)
	return out
}
