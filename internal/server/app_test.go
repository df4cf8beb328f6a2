package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/radar/internal/server/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.HealthAddrGRPC = "127.0.0.1:0"
	cfg.DatabaseDriver = "sqlite"
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "app.db")
	cfg.ShutdownTimeout = time.Second
	cfg.BcryptCost = bcrypt.MinCost
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DatabaseDriver = "oracle"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestNewApp_UnreachableStore(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "missing", "dir", "app.db")

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), sqliteConfig(t))
	require.NoError(t, err)

	id, err := app.userService.Create(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}

	require.Error(t, app.db.Ping())
}
