package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepbook-dev/keepbook/internal/config"
	"github.com/keepbook-dev/keepbook/internal/store"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Test Biz"))

	cfg, err := config.Load(filepath.Join(dir, "keepbook.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Test Biz", cfg.Business.Name)
	assert.Equal(t, filepath.Join(dir, "ledger.db"), cfg.Database.Path)
	assert.NotEmpty(t, cfg.Session.Secret)

	// A second init must not overwrite the existing config.
	require.Error(t, runInit(dir, "Other Biz"))
}

func TestBootstrapAdmin(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	cfg := config.Default("Test Biz")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, bootstrapAdmin(st, cfg, log))
	n, err := st.CountUsers()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// Runs at every startup; must not create a second user.
	require.NoError(t, bootstrapAdmin(st, cfg, log))
	n, err = st.CountUsers()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
