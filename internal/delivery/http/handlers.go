package http

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/twforecast/backend/internal/domain"
	"github.com/twforecast/backend/internal/metrics"
	"github.com/twforecast/backend/internal/service"
)

// isoMillis matches the ISO-8601 form browsers produce
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Handler contains all HTTP handlers
type Handler struct {
	forecastSvc *service.ForecastService
	metrics     *metrics.Metrics
}

// NewHandler creates a new handler
func NewHandler(forecastSvc *service.ForecastService, m *metrics.Metrics) *Handler {
	return &Handler{
		forecastSvc: forecastSvc,
		metrics:     m,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(domain.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}

// GetWeather returns the forecast of every city
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	ctx := c.Context()

	cities, err := h.forecastSvc.GetAllCities(ctx)
	if err != nil {
		return h.weatherError(c, err)
	}

	h.metrics.ObserveRequest(fiber.StatusOK)
	return c.JSON(domain.ForecastResponse{
		Success: true,
		Data:    cities,
	})
}

// weatherError maps a forecast failure to a response. Causes are logged, never returned.
func (h *Handler) weatherError(c *fiber.Ctx, err error) error {
	var (
		status int
		body   domain.ErrorResponse
	)

	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		status = fiber.StatusInternalServerError
		body = domain.ErrorResponse{
			Error:   "server configuration error",
			Message: "CWA_API_KEY is not set, add it to .env",
		}
		log.Printf("[%v] Weather request rejected: %v", c.Locals("requestid"), err)
	case errors.Is(err, domain.ErrNoLocations):
		status = fiber.StatusNotFound
		body = domain.ErrorResponse{Error: "no forecast data found"}
	default:
		status = fiber.StatusInternalServerError
		body = domain.ErrorResponse{
			Error:   "server error",
			Message: "unable to fetch weather data, please try again later",
		}
		log.Printf("[%v] Failed to fetch weather data: %v", c.Locals("requestid"), err)
	}

	h.metrics.ObserveRequest(status)
	return c.Status(status).JSON(body)
}

// ErrorHandler renders errors and recovered panics that escape the handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("[%v] Unhandled error on %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(domain.ErrorResponse{
		Error:   errorLabel(code),
		Message: message,
	})
}

func errorLabel(code int) string {
	if code >= fiber.StatusInternalServerError {
		return "server error"
	}
	return "request error"
}
