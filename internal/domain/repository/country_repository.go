package repository

import (
	"context"

	"tripboard-service/internal/domain/entity"
)

// CountryRepository fetches the country reference list
type CountryRepository interface {
	FetchCountries(ctx context.Context) ([]entity.Country, error)
}
