package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Gateway struct {
		APIKey    string
		APISecret string
		Sender    string
		BaseURL   string
	}

	Refresher struct {
		Interval time.Duration
		Timeout  time.Duration
	}

	Cache struct {
		BalanceTTL time.Duration
		SendersTTL time.Duration
		JobTTL     time.Duration
	}

	// LowBalanceThreshold is the balance below which the refresher
	// logs a warning.
	LowBalanceThreshold float64
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "jawaly-gateway")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// 4jawaly gateway credentials
	cfg.Gateway.APIKey = getEnv("JAWALY_API_KEY", "")
	cfg.Gateway.APISecret = getEnv("JAWALY_API_SECRET", "")
	cfg.Gateway.Sender = getEnv("JAWALY_SENDER", "")
	cfg.Gateway.BaseURL = getEnv("JAWALY_BASE_URL", "")

	// Balance refresher
	cfg.Refresher.Interval = getDuration("REFRESHER_INTERVAL", 5*time.Minute)
	cfg.Refresher.Timeout = getDuration("REFRESHER_TIMEOUT", 30*time.Second)

	// Cache TTLs
	cfg.Cache.BalanceTTL = getDuration("CACHE_BALANCE_TTL", 5*time.Minute)
	cfg.Cache.SendersTTL = getDuration("CACHE_SENDERS_TTL", 1*time.Hour)
	cfg.Cache.JobTTL = getDuration("CACHE_JOB_TTL", 24*time.Hour)

	cfg.LowBalanceThreshold = getFloat("LOW_BALANCE_THRESHOLD", 100)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
