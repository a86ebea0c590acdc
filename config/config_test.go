package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.StartupTimeout)
	assert.Equal(t, int64(99999), cfg.AbsentPersonID)
	assert.Zero(t, cfg.SeededPersonID)
}

func TestOverrides(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PERSON_API_URL":             "https://people.example.com/v2",
		"PERSON_API_REQUEST_TIMEOUT": "2s",
		"PERSON_API_STARTUP_TIMEOUT": "0s",
		"PERSON_API_ABSENT_ID":       "123456",
		"PERSON_API_SEEDED_ID":       "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://people.example.com/v2", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.StartupTimeout)
	assert.Equal(t, int64(123456), cfg.AbsentPersonID)
	assert.Equal(t, int64(1), cfg.SeededPersonID)
}

func TestInvalidValues(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad duration":      {"PERSON_API_REQUEST_TIMEOUT": "soon"},
		"bad id":            {"PERSON_API_ABSENT_ID": "lots"},
		"relative url":      {"PERSON_API_URL": "/api"},
		"negative timeout":  {"PERSON_API_STARTUP_TIMEOUT": "-1s"},
		"seeded is absent":  {"PERSON_API_SEEDED_ID": "99999"},
		"negative seed id":  {"PERSON_API_SEEDED_ID": "-3"},
		"unsupported proto": {"PERSON_API_URL": "ftp://localhost/api"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}

func TestBaseURLOverrideReplacesInvalidEnvironmentValue(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{
		"PERSON_API_URL":       "not a url",
		"PERSON_API_ABSENT_ID": "7",
	})

	cfg, err := Load(context.Background(), WithBaseURL(env, "http://svc:9000/api"))
	require.NoError(t, err)
	assert.Equal(t, "http://svc:9000/api", cfg.BaseURL)
	assert.Equal(t, int64(7), cfg.AbsentPersonID)

	_, err = Load(context.Background(), WithBaseURL(env, ""))
	assert.Error(t, err)

	_, err = Load(context.Background(), WithBaseURL(envconfig.MapLookuper(nil), "ftp://svc/api"))
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PERSON_API_ABSENT_ID=4242\n"), 0o600))
	t.Setenv("PERSON_API_ABSENT_ID", "")
	require.NoError(t, os.Unsetenv("PERSON_API_ABSENT_ID"))

	require.NoError(t, LoadEnvFile(path, true))
	cfg, err := Load(context.Background(), envconfig.OsLookuper())
	require.NoError(t, err)
	assert.Equal(t, int64(4242), cfg.AbsentPersonID)
}

func TestLoadEnvFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	assert.NoError(t, LoadEnvFile(missing, false))
	assert.Error(t, LoadEnvFile(missing, true))
}
