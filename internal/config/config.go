package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "3000"
	DefaultCWABaseURL = "https://opendata.cwa.gov.tw/api"
	DefaultCWATimeout = 10 * time.Second
)

// Config holds every runtime setting. It is built once at startup.
type Config struct {
	CWAAPIKey   string
	CWABaseURL  string
	CWATimeout  time.Duration
	Port        string
	AllowOrigin string
	Env         string
}

// Load reads .env (if any) and the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	return &Config{
		CWAAPIKey:   getEnv("CWA_API_KEY", ""),
		CWABaseURL:  getEnv("CWA_API_BASE_URL", DefaultCWABaseURL),
		CWATimeout:  getEnvDuration("CWA_HTTP_TIMEOUT", DefaultCWATimeout),
		Port:        getEnv("PORT", DefaultPort),
		AllowOrigin: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Env:         getEnv("GO_ENV", "development"),
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}
	return ":" + port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
