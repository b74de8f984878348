package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"konvert/pkg/errors"
)

type Config struct {
	App           AppConfig
	Telegram      TelegramConfig
	CoinGecko     CoinGeckoConfig
	Metrics       MetricsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"konvert"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type TelegramConfig struct {
	BotToken       string        `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	UpdateTimeout  int           `envconfig:"TELEGRAM_UPDATE_TIMEOUT" default:"60"`
	HTTPTimeout    time.Duration `envconfig:"TELEGRAM_HTTP_TIMEOUT" default:"30s"`
	RateLimitRate  int           `envconfig:"TELEGRAM_RATE_LIMIT_RATE" default:"20"`
	RateLimitBurst int           `envconfig:"TELEGRAM_RATE_LIMIT_BURST" default:"30"`
}

type CoinGeckoConfig struct {
	BaseURL     string        `envconfig:"COINGECKO_BASE_URL" default:"https://api.coingecko.com/api/v3/simple/price"`
	HTTPTimeout time.Duration `envconfig:"COINGECKO_HTTP_TIMEOUT" default:"10s"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Addr    string `envconfig:"METRICS_ADDR" default:":9090"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
