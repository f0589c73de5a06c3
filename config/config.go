package config

import (
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"3000"`
	// SiteHostname scopes every storage key; it stands in for the browser
	// origin the original UI derived keys from.
	SiteHostname string `env:"SITE_HOSTNAME" envDefault:"localhost"`
	Logger       *logger.Config
	Tracing      *tracing.JaegerConfig
}

type ProviderConfig struct {
	// APIURL is the upstream base URL, e.g. https://api.sendbun.com/
	APIURL string `env:"API_URL"`
	// APIKey is the bearer credential; it never leaves this process.
	APIKey         string `env:"API_KEY"`
	TimeoutSeconds int    `env:"PROVIDER_TIMEOUT_SECONDS" envDefault:"15"`
	MaxRetries     int    `env:"PROVIDER_MAX_RETRIES" envDefault:"1"`
}

type DatabaseConfig struct {
	Path     string `env:"DB_PATH" envDefault:"simpleinbox.db"`
	LogLevel string `env:"DB_LOG_LEVEL" envDefault:"WARN"`
}

type CronConfig struct {
	AccountCleanupSchedule string `env:"CRON_SCHEDULE_ACCOUNT_CLEANUP" envDefault:"@every 1m"`
}
