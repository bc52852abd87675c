package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// Adapter holds the API server address and request timeout.
	Adapter ClientAdapter `envPrefix:"MONEY_"`

	// Session holds local token persistence settings.
	Session ClientSession `envPrefix:"MONEY_"`

	// LogFile is where the client writes its structured logs.
	// Env: MONEY_LOG_FILE
	LogFile string `env:"MONEY_LOG_FILE"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API server.
	// Env: MONEY_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: MONEY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times idempotent requests are retried on
	// network errors and 5xx responses.
	// Env: MONEY_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// ClientSession holds settings of the locally persisted token.
type ClientSession struct {
	// TokenFile is the path of the file the token is stored in.
	// Env: MONEY_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetClientConfig loads the client configuration from environment variables
// and fills defaults relative to the user's config directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) setDefaults() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://" + DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RetryCount == 0 {
		cfg.Adapter.RetryCount = 2
	}

	if cfg.Session.TokenFile != "" && cfg.LogFile != "" {
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("error resolving user config dir: %w", err)
	}
	dir = filepath.Join(dir, "money-tracker")

	if cfg.Session.TokenFile == "" {
		cfg.Session.TokenFile = filepath.Join(dir, "token")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dir, "client.log")
	}

	return nil
}
