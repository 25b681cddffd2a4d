package service

import (
	"context"

	"github.com/twforecast/backend/internal/domain"
)

// ForecastService serves the per-city forecast
type ForecastService struct {
	source LocationSource
}

// NewForecastService creates a new forecast service
func NewForecastService(source LocationSource) *ForecastService {
	return &ForecastService{source: source}
}

// GetAllCities fetches the upstream dataset and aggregates every city.
// Nothing is kept between calls.
func (s *ForecastService) GetAllCities(ctx context.Context) ([]domain.CityForecast, error) {
	locations, err := s.source.FetchLocations(ctx)
	if err != nil {
		return nil, err
	}

	if len(locations) == 0 {
		return nil, domain.ErrNoLocations
	}

	return Aggregate(locations)
}
