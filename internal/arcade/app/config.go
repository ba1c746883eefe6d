package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer string `env:"ARCADE_ISSUER" envDefault:"arcade"`

	// Store
	StoreDriver  string `env:"ARCADE_STORE_DRIVER" envDefault:"sqlite"`
	DatabaseFile string `env:"ARCADE_DATABASE_FILE" envDefault:"arcade.db"`
	DatabaseURL  string `env:"ARCADE_DATABASE_URL"`

	// Secrets. An empty SessionKeyFile means an ephemeral key: every session
	// is invalidated on restart.
	PepperFile     string `env:"ARCADE_PEPPER_FILE" envDefault:"pepper"`
	SessionKeyFile string `env:"ARCADE_SESSION_KEY_FILE"`

	SessionTTL   time.Duration `env:"ARCADE_SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"ARCADE_COOKIE_SECURE" envDefault:"false"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	StoreCheckInterval  time.Duration `env:"STORE_CHECK_INTERVAL" envDefault:"15s"`
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("ARCADE_DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("ARCADE_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown ARCADE_STORE_DRIVER %q (want sqlite or postgres)", c.StoreDriver)
	}

	if c.SessionTTL <= 0 {
		return errors.New("ARCADE_SESSION_TTL must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	return nil
}
