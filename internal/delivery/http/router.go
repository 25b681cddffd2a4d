package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/twforecast/backend/internal/metrics"
	"github.com/twforecast/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, forecastSvc *service.ForecastService, m *metrics.Metrics, gatherer prometheus.Gatherer) {
	handler := NewHandler(forecastSvc, m)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	{
		api.Get("/health", handler.HealthCheck)
		api.Get("/weather", handler.GetWeather)
	}
}
