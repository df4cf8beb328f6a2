package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name      string
		args      []string
		expected  func() *Config
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-g", ":6000", "-D", "sqlite", "-d", "db.sqlite", "-t", "2", "-l", "debug", "-strict"},
			expected: func() *Config {
				c := base()
				c.HTTPAddr = "127.0.0.1:9090"
				c.HealthAddrGRPC = ":6000"
				c.DatabaseDriver = "sqlite"
				c.DatabaseDSN = "db.sqlite"
				c.StoreTimeout = 2 * time.Second
				c.LogLevel = "debug"
				c.StrictUpdate = true
				return c
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-a", ":1"},
			expected: func() *Config { c := base(); c.HTTPAddr = ":1"; return c },
		},
		{
			name: "timeout untouched without -t",
			args: []string{},
			expected: func() *Config {
				return base()
			},
		},
		{
			name:      "invalid int",
			args:      []string{"-t", "soon"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected(), cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeout(t *testing.T) {
	cfg := &Config{StoreTimeout: 1500 * time.Millisecond}
	require.NoError(t, parseFlags(cfg, []string{"-a", ":1"}))
	require.Equal(t, 1500*time.Millisecond, cfg.StoreTimeout)
}
