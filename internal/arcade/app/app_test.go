package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	return Config{
		Issuer:              "arcade-test",
		StoreDriver:         DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "arcade.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		SessionKeyFile:      filepath.Join(dir, "keys", "session.pem"),
		SessionTTL:          time.Hour,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewWiresEverything(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	require.FileExists(t, cfg.PepperFile)
	require.FileExists(t, cfg.SessionKeyFile)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	for _, path := range []string{"/livez", "/readyz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSessionKeySurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	firstKey, err := os.ReadFile(cfg.SessionKeyFile)
	require.NoError(t, err)
	pub := first.signer.PublicKey()
	require.NoError(t, first.Close())

	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	secondKey, err := os.ReadFile(cfg.SessionKeyFile)
	require.NoError(t, err)
	require.Equal(t, firstKey, secondKey)
	require.Equal(t, pub, second.signer.PublicKey())
}

func TestNewFailsOnUnreachableDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "missing", "dir", "arcade.db")

	_, err := New(cfg)
	require.Error(t, err)
}
