// Package config loads harness settings from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// BaseURL is the root of the Person API; scenario paths such as /person/1 are appended to it.
	BaseURL string `env:"PERSON_API_URL,default=http://localhost:8080/api"`

	// RequestTimeout bounds every single request. Zero means no timeout.
	RequestTimeout time.Duration `env:"PERSON_API_REQUEST_TIMEOUT,default=30s"`

	// StartupTimeout is how long to wait for the service to start answering before the run.
	// Zero skips the wait.
	StartupTimeout time.Duration `env:"PERSON_API_STARTUP_TIMEOUT,default=10s"`

	// AbsentPersonID is an id the service is assumed not to have.
	AbsentPersonID int64 `env:"PERSON_API_ABSENT_ID,default=99999"`

	// SeededPersonID, when non-zero, is used as the existing person instead of creating fixtures.
	SeededPersonID int64 `env:"PERSON_API_SEEDED_ID"`
}

// Load reads the configuration through the given lookuper. Pass envconfig.OsLookuper() to use
// the process environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WithBaseURL returns a lookuper in which baseURL, if not empty, takes the place of
// PERSON_API_URL, so that a command line override is validated instead of the environment value.
func WithBaseURL(lookuper envconfig.Lookuper, baseURL string) envconfig.Lookuper {
	if baseURL == "" {
		return lookuper
	}
	return envconfig.MultiLookuper(
		envconfig.MapLookuper(map[string]string{"PERSON_API_URL": baseURL}),
		lookuper,
	)
}

// LoadEnvFile adds the variables from a .env file to the process environment. Variables that
// are already set keep their values. A missing file is not an error unless required is true.
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid PERSON_API_URL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid PERSON_API_URL %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if c.RequestTimeout < 0 || c.StartupTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.SeededPersonID < 0 {
		return errors.New("PERSON_API_SEEDED_ID must not be negative")
	}
	if c.SeededPersonID != 0 && c.SeededPersonID == c.AbsentPersonID {
		return errors.New("PERSON_API_SEEDED_ID and PERSON_API_ABSENT_ID must differ")
	}
	return nil
}
