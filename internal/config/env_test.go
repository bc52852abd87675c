// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":      "jwt_secret",
		"APP_TOKEN_ISSUER":        "test_issuer",
		"APP_TOKEN_AUDIENCE":      "money-web",
		"APP_TOKEN_DURATION":      "4h",
		"APP_BCRYPT_COST":         "12",
		"APP_VERSION":             "1.2.3",
		"APP_LOG_LEVEL":           "info",
		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"STORAGE_DB_DRIVER":          "sqlite",
		"STORAGE_DB_DATABASE_URI":    "file:money.db",
		"STORAGE_DB_MAX_OPEN_CONNS":  "20",
		"STORAGE_DB_MAX_IDLE_CONNS":  "5",
		"STORAGE_DB_CONNECT_RETRIES": "3",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "money-web", cfg.App.TokenAudience)
	assert.Equal(t, 4*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:money.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, 3, cfg.Storage.DB.ConnectRetries)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	dir := t.TempDir()
	setEnvVars(t, map[string]string{
		"MONEY_SERVER_URL":      "http://api.local:9000",
		"MONEY_REQUEST_TIMEOUT": "5s",
		"MONEY_TOKEN_FILE":      dir + "/token",
		"MONEY_LOG_FILE":        dir + "/client.log",
	})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://api.local:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
	assert.Equal(t, dir+"/token", cfg.Session.TokenFile)
	assert.Equal(t, dir+"/client.log", cfg.LogFile)
}
