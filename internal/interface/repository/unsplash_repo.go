package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"
)

// UnsplashRepository searches photos on the Unsplash API
type UnsplashRepository struct {
	logger    logger.Logger
	baseURL   string
	accessKey string
	client    *http.Client
}

// NewUnsplashRepository creates a new Unsplash repository
func NewUnsplashRepository(baseURL, accessKey string, logger logger.Logger) repository.ImageRepository {
	if baseURL == "" {
		baseURL = "https://api.unsplash.com"
	}

	return &UnsplashRepository{
		logger:    logger,
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchPhotos returns the "regular" URL of every result, in result order.
// Results without one yield an empty string.
func (r *UnsplashRepository) SearchPhotos(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("client_id", r.accessKey)

	endpoint := fmt.Sprintf("%s/search/photos?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Unsplash API returned status %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	urls := make([]string, len(response.Results))
	for i, result := range response.Results {
		urls[i] = result.URLs.Regular
	}

	r.logger.Debug("Unsplash search completed", "query", query, "results", len(urls))
	return urls, nil
}
