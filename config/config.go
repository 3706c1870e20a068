package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// New parses app-level settings from the environment.
//
// Secrets and call-time configuration (PAYMENT_RECIPIENT_ADDRESS, PORTAL_APP_ID,
// PORTAL_API_KEY, GEMINI_API_KEY) are deliberately not part of this struct:
// they are read where they are used and validated per request, so a missing
// value surfaces as a request error instead of refusing to boot.
func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	APP
	Reference
	Generation
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Reference struct {
	// TTL is how long an issued payment reference stays redeemable.
	TTL time.Duration `env:"PAYMENT_REFERENCE_TTL" envDefault:"10m"`
	// StoreBackend selects the reference store: memory (default) or dynamodb.
	StoreBackend string `env:"REFERENCE_STORE" envDefault:"memory"`
}

type Generation struct {
	RetryMaxAttempts int           `env:"EDITOR_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"EDITOR_RETRY_BASE_DELAY" envDefault:"500ms"`
}
