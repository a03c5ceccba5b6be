package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripboard-service/internal/interface/repository"
	"tripboard-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsplashRepository_SearchPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Japan Food Relaxed", r.URL.Query().Get("query"))
		assert.Equal(t, "access-key", r.URL.Query().Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"results":[{"urls":{"regular":"https://img/1"}},{"urls":{}},{"urls":{"regular":"https://img/3"}}]}`)
	}))
	defer server.Close()

	repo := repository.NewUnsplashRepository(server.URL+"/", "access-key", logger.NewNopLogger())
	urls, err := repo.SearchPhotos(context.Background(), "Japan Food Relaxed")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1", "", "https://img/3"}, urls)
}

func TestUnsplashRepository_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	repo := repository.NewUnsplashRepository(server.URL, "bad", logger.NewNopLogger())
	_, err := repo.SearchPhotos(context.Background(), "Peru")
	assert.ErrorContains(t, err, "403")
}

func TestRestCountriesRepository_FetchCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all", r.URL.Path)
		assert.Equal(t, "name,cca3,cioc,flags,maps,latlng", r.URL.Query().Get("fields"))
		io.WriteString(w, `[
			{"name":{"common":"Peru"},"cca3":"PER","flags":{"png":"https://flags/pe.png","svg":"https://flags/pe.svg"},
			 "maps":{"googleMaps":"https://goo.gl/maps/pe","openStreetMaps":"https://osm/pe"},"latlng":[-10,-76]},
			{"name":{"common":""},"cca3":"XXX"}
		]`)
	}))
	defer server.Close()

	repo := repository.NewRestCountriesRepository(server.URL, logger.NewNopLogger())
	countries, err := repo.FetchCountries(context.Background())

	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Peru", countries[0].Name)
	assert.Equal(t, "PER", countries[0].Code)
	assert.Equal(t, "https://flags/pe.svg", countries[0].FlagSVG)
	assert.Equal(t, "https://osm/pe", countries[0].OpenStreetMap)
	assert.Equal(t, []float64{-10, -76}, countries[0].Coordinates)
}

func TestRestCountriesRepository_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	repo := repository.NewRestCountriesRepository(server.URL, logger.NewNopLogger())
	_, err := repo.FetchCountries(context.Background())
	assert.Error(t, err)
}

func TestGeminiRepository_GenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("x-goog-api-key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "plan a trip", body.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"part one, "},{"text":"part two"}]},"finishReason":"STOP"}]}`)
	}))
	defer server.Close()

	repo, err := repository.NewGeminiRepository(context.Background(), "api-key", server.URL+"/", logger.NewNopLogger())
	require.NoError(t, err)

	text, err := repo.GenerateContent(context.Background(), "gemini-2.0-flash", "plan a trip")
	require.NoError(t, err)
	assert.Equal(t, "part one, part two", text)
}

func TestGeminiRepository_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	repo, err := repository.NewGeminiRepository(context.Background(), "api-key", server.URL+"/", logger.NewNopLogger())
	require.NoError(t, err)

	text, err := repo.GenerateContent(context.Background(), "models/gemini-2.0-flash", "plan a trip")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiRepository_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"code":429,"message":"quota"}}`)
	}))
	defer server.Close()

	repo, err := repository.NewGeminiRepository(context.Background(), "api-key", server.URL+"/", logger.NewNopLogger())
	require.NoError(t, err)

	_, err = repo.GenerateContent(context.Background(), "gemini-2.0-flash", "plan a trip")
	assert.Error(t, err)
}
