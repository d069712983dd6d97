package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	APIBaseURL      string
	APITimeout      time.Duration
	WeatherLat      float64
	WeatherLon      float64
	WeatherCity     string
	WeatherState    string
	WeatherCacheTTL time.Duration
	WeatherTimeout  time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(get(k, "")); err == nil {
			return n
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if f, err := strconv.ParseFloat(get(k, ""), 64); err == nil {
			return f
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "America/Sao_Paulo"),
		DBPath:          get("DB_PATH", "silvacollect.db"),
		APIBaseURL:      get("API_BASE_URL", "http://localhost:3000/api"),
		APITimeout:      time.Duration(getInt("API_TIMEOUT_SECONDS", 30)) * time.Second,
		WeatherLat:      getFloat("WEATHER_LAT", -24.3207),
		WeatherLon:      getFloat("WEATHER_LON", -50.6153),
		WeatherCity:     get("WEATHER_CITY", "Telêmaco Borba"),
		WeatherState:    get("WEATHER_STATE", "PR"),
		WeatherCacheTTL: time.Duration(getInt("WEATHER_CACHE_MINUTES", 15)) * time.Minute,
		WeatherTimeout:  time.Duration(getInt("WEATHER_TIMEOUT_SECONDS", 5)) * time.Second,
	}
	log.Printf("[cfg] port=%s db=%s api=%s", cfg.Port, cfg.DBPath, cfg.APIBaseURL)
	return cfg
}
