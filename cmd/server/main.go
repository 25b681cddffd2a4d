package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/twforecast/backend/internal/config"
	"github.com/twforecast/backend/internal/delivery/http"
	"github.com/twforecast/backend/internal/metrics"
	"github.com/twforecast/backend/internal/service"
)

func main() {
	// Configuration
	cfg := config.Load()
	if cfg.CWAAPIKey == "" {
		log.Println("Warning: CWA_API_KEY is not set, /api/weather will answer 500")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Dependency Injection: Services
	cwaClient := service.NewCWAClient(cfg.CWAAPIKey, cfg.CWABaseURL, cfg.CWATimeout, m)
	forecastSvc := service.NewForecastService(cwaClient)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CWA Forecast API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.CWATimeout,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigin,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, forecastSvc, m, reg)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on %s (%s)", cfg.Addr(), cfg.Env)
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
