package service

import (
	"fmt"

	"github.com/twforecast/backend/internal/domain"
)

// elementRoute maps an element code onto a ForecastSlot field
type elementRoute struct {
	set    func(slot *domain.ForecastSlot, value string)
	format func(value string) string
}

func asIs(v string) string    { return v }
func percent(v string) string { return v + "%" }
func celsius(v string) string { return v + "°C" }

// elementRoutes is the only place element codes are known. Codes missing here are ignored.
var elementRoutes = map[string]elementRoute{
	domain.ElementWeather: {
		set:    func(s *domain.ForecastSlot, v string) { s.Weather = v },
		format: asIs,
	},
	domain.ElementRain: {
		set:    func(s *domain.ForecastSlot, v string) { s.Rain = v },
		format: percent,
	},
	domain.ElementMinTemp: {
		set:    func(s *domain.ForecastSlot, v string) { s.MinTemp = v },
		format: celsius,
	},
	domain.ElementMaxTemp: {
		set:    func(s *domain.ForecastSlot, v string) { s.MaxTemp = v },
		format: celsius,
	},
	domain.ElementComfort: {
		set:    func(s *domain.ForecastSlot, v string) { s.Comfort = v },
		format: asIs,
	},
	domain.ElementWindSpeed: {
		set:    func(s *domain.ForecastSlot, v string) { s.WindSpeed = v },
		format: asIs,
	},
}

// Aggregate reshapes upstream locations into per-city forecasts.
// Either every location is converted or an error is returned.
func Aggregate(locations []domain.UpstreamLocation) ([]domain.CityForecast, error) {
	if len(locations) == 0 {
		return nil, domain.ErrNoLocations
	}

	cities := make([]domain.CityForecast, 0, len(locations))
	for _, loc := range locations {
		city, err := aggregateLocation(loc)
		if err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	return cities, nil
}

func aggregateLocation(loc domain.UpstreamLocation) (domain.CityForecast, error) {
	elements := loc.WeatherElement
	if len(elements) == 0 {
		return domain.CityForecast{}, fmt.Errorf("aggregate: %q has no weather elements: %w", loc.LocationName, domain.ErrTransform)
	}

	// The first element defines the forecast periods
	periods := elements[0].Time
	timeCount := len(periods)
	if timeCount == 0 {
		return domain.CityForecast{}, fmt.Errorf("aggregate: %q has no time slots: %w", loc.LocationName, domain.ErrTransform)
	}

	for _, el := range elements {
		if len(el.Time) != timeCount {
			return domain.CityForecast{}, fmt.Errorf(
				"aggregate: %q element %s has %d time slots, want %d: %w",
				loc.LocationName, el.ElementName, len(el.Time), timeCount, domain.ErrTransform,
			)
		}
	}

	forecasts := make([]domain.ForecastSlot, timeCount)
	for i := range forecasts {
		slot := domain.ForecastSlot{
			StartTime: periods[i].StartTime,
			EndTime:   periods[i].EndTime,
		}

		for _, el := range elements {
			route, ok := elementRoutes[el.ElementName]
			if !ok {
				continue
			}
			param := el.Time[i].Parameter
			if param == nil {
				return domain.CityForecast{}, fmt.Errorf(
					"aggregate: %q element %s slot %d has no parameter: %w",
					loc.LocationName, el.ElementName, i, domain.ErrTransform,
				)
			}
			route.set(&slot, route.format(param.ParameterName))
		}

		forecasts[i] = slot
	}

	return domain.CityForecast{
		City:      loc.LocationName,
		Forecasts: forecasts,
	}, nil
}
