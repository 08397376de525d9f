// internal/config/config.go
// Loader konfigurasi dari environment variables (+ .env opsional)
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	LogLevel  string
	LogFormat string

	WellsAPI struct {
		Base    string        // base URL service well-data eksternal
		Timeout time.Duration // 0 = tanpa timeout (ikut perilaku front-end asli)
	}

	Chart struct {
		Width  int
		Height int
	}

	Notify struct {
		TTL time.Duration // umur notifikasi transient
	}
}

func Load() *Config {
	// .env hanya untuk lokal; diabaikan jika tidak ada
	_ = godotenv.Load()

	c := &Config{}
	c.AppName = getEnv("APP_NAME", "pdp-dashboard")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("LOG_LEVEL", "debug")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	c.WellsAPI.Base = getEnv("WELLS_API_BASE", "http://localhost:5000")
	c.WellsAPI.Timeout = getEnvDuration("WELLS_API_TIMEOUT", 0)

	c.Chart.Width = getEnvInt("CHART_WIDTH", 960)
	c.Chart.Height = getEnvInt("CHART_HEIGHT", 420)

	c.Notify.TTL = getEnvDuration("NOTIFY_TTL", 6*time.Second)

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
