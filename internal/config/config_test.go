package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz")
	cfg.Server.Listen = "127.0.0.1:9999"
	cfg.Database.Path = "/tmp/test-ledger.db"

	path := filepath.Join(t.TempDir(), "keepbook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, cfg.Business.Currency, got.Business.Currency)
	assert.Equal(t, cfg.Server.Listen, got.Server.Listen)
	assert.Equal(t, cfg.Database.Path, got.Database.Path)
	assert.Equal(t, cfg.Session.Secret, got.Session.Secret)
	assert.Equal(t, cfg.Admin.Username, got.Admin.Username)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Shop")

	assert.Equal(t, "My Shop", cfg.Business.Name)
	assert.Equal(t, "USD", cfg.Business.Currency)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
	assert.Equal(t, "ledger.db", cfg.Database.Path)
	assert.Equal(t, "admin", cfg.Admin.Username)
	// 32 random bytes, hex encoded.
	assert.Len(t, cfg.Session.Secret, 64)

	// Each ledger gets its own secret.
	assert.NotEqual(t, cfg.Session.Secret, Default("Other").Session.Secret)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
