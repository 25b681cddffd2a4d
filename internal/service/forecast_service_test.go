package service

import (
	"context"
	"errors"
	"testing"

	"github.com/twforecast/backend/internal/domain"
)

type stubSource struct {
	locations []domain.UpstreamLocation
	err       error
	calls     int
}

func (s *stubSource) FetchLocations(ctx context.Context) ([]domain.UpstreamLocation, error) {
	s.calls++
	return s.locations, s.err
}

func TestGetAllCities(t *testing.T) {
	src := &stubSource{locations: []domain.UpstreamLocation{
		{LocationName: "Taoyuan", WeatherElement: []domain.UpstreamElement{element("PoP", "20", "40")}},
	}}

	cities, err := NewForecastService(src).GetAllCities(context.Background())
	if err != nil {
		t.Fatalf("GetAllCities failed: %v", err)
	}
	if len(cities) != 1 || cities[0].City != "Taoyuan" {
		t.Fatalf("unexpected cities: %+v", cities)
	}
	if cities[0].Forecasts[1].Rain != "40%" {
		t.Fatalf("Rain = %q, want 40%%", cities[0].Forecasts[1].Rain)
	}
}

func TestGetAllCitiesEmpty(t *testing.T) {
	src := &stubSource{locations: []domain.UpstreamLocation{}}

	_, err := NewForecastService(src).GetAllCities(context.Background())
	if !errors.Is(err, domain.ErrNoLocations) {
		t.Fatalf("err = %v, want ErrNoLocations", err)
	}
}

func TestGetAllCitiesPropagatesSourceError(t *testing.T) {
	src := &stubSource{err: domain.ErrMissingAPIKey}

	_, err := NewForecastService(src).GetAllCities(context.Background())
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", src.calls)
	}
}
