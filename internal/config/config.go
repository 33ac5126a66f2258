package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	// UseMock selects the in-memory mock binding instead of the HTTP one.
	UseMock bool
	// BackendURL is the remote API gateway base URL for the HTTP binding.
	BackendURL string
	// StoragePath is the file backing the local key/value store. Empty means
	// in-memory only.
	StoragePath string
	// MockLatency is the artificial delay the mock binding adds per call.
	MockLatency time.Duration

	// Payment gateway (hosted widget) settings.
	PaymentClientKey string
	PaymentWidgetURL string
	SuccessURL       string
	FailURL          string

	// Mock server settings.
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CatalogSeed     int64
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		UseMock:          envBool("USE_MOCK", false),
		BackendURL:       envOrDefault("BACKEND_URL", "http://localhost:8080"),
		StoragePath:      envOrDefault("STORAGE_PATH", ""),
		MockLatency:      envDuration("MOCK_LATENCY_MS", 500*time.Millisecond),
		PaymentClientKey: envOrDefault("PAYMENT_CLIENT_KEY", "test_ck_sandbox"),
		PaymentWidgetURL: envOrDefault("PAYMENT_WIDGET_URL", "https://pay.example.com/widget"),
		SuccessURL:       envOrDefault("PAYMENT_SUCCESS_URL", "http://localhost:5173/payment/success"),
		FailURL:          envOrDefault("PAYMENT_FAIL_URL", "http://localhost:5173/payment/fail"),
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT_MS", 10*time.Second),
		CatalogSeed:      envInt64("CATALOG_SEED", 1),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
