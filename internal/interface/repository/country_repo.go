package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"
)

const countryFields = "name,cca3,cioc,flags,maps,latlng"

// RestCountriesRepository loads the country list from the REST Countries API
type RestCountriesRepository struct {
	logger  logger.Logger
	baseURL string
	client  *http.Client
}

// NewRestCountriesRepository creates a new REST Countries repository
func NewRestCountriesRepository(baseURL string, logger logger.Logger) repository.CountryRepository {
	if baseURL == "" {
		baseURL = "https://restcountries.com/v3.1"
	}

	return &RestCountriesRepository{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCountries returns every country in API order
func (r *RestCountriesRepository) FetchCountries(ctx context.Context) ([]entity.Country, error) {
	endpoint := fmt.Sprintf("%s/all?fields=%s", r.baseURL, countryFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch countries: status %d", resp.StatusCode)
	}

	var data []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		CCA3  string `json:"cca3"`
		Flags struct {
			PNG string `json:"png"`
			SVG string `json:"svg"`
		} `json:"flags"`
		Maps struct {
			GoogleMaps     string `json:"googleMaps"`
			OpenStreetMaps string `json:"openStreetMaps"`
		} `json:"maps"`
		LatLng []float64 `json:"latlng"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	countries := make([]entity.Country, 0, len(data))
	for _, c := range data {
		if c.Name.Common == "" {
			continue
		}
		countries = append(countries, entity.Country{
			Name:          c.Name.Common,
			Code:          c.CCA3,
			Flag:          c.Flags.PNG,
			FlagSVG:       c.Flags.SVG,
			GoogleMaps:    c.Maps.GoogleMaps,
			OpenStreetMap: c.Maps.OpenStreetMaps,
			Coordinates:   c.LatLng,
		})
	}

	r.logger.Debug("Fetched countries", "count", len(countries))
	return countries, nil
}
