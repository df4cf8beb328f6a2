// Package config handles configuration for the users API server,
// including defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the users API server.
//
// Fields:
//   - HTTPAddr: bind address of the REST endpoint.
//   - HealthAddrGRPC: bind address of the gRPC health endpoint; empty disables it.
//   - DatabaseDriver: "postgres" or "sqlite".
//   - DatabaseDSN: full DSN; when empty it is composed from the DB* parts.
//   - DBHost / DBPort / DBUser / DBPassword / DBName: store location and credentials.
//   - StoreTimeout: upper bound for a single store call.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - HealthInterval: how often the health server pings the store.
//   - BcryptCost: password hashing cost.
//   - StrictUpdate: reject updates without fields with 400 instead of 404.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	HTTPAddr        string
	HealthAddrGRPC  string
	DatabaseDriver  string
	DatabaseDSN     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	StoreTimeout    time.Duration
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration
	BcryptCost      int
	StrictUpdate    bool
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the credentials are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8000"
	c.HealthAddrGRPC = ":50051"
	c.DatabaseDriver = "postgres"
	c.DatabaseDSN = ""
	c.DBHost = "localhost"
	c.DBPort = "5432"
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "radar"
	c.StoreTimeout = 5 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.HealthInterval = 10 * time.Second
	c.BcryptCost = bcrypt.DefaultCost
	c.StrictUpdate = false
	c.LogLevel = "info"
}

// DSN returns DatabaseDSN when set. Otherwise it composes one from the DB*
// parts: a postgres URL, or a "<DBName>.db" file for sqlite.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}

	switch c.DatabaseDriver {
	case "sqlite", "sqlite3":
		return c.DBName + ".db"
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file) and finally command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects settings the servers cannot run with.
func (c *Config) validate() error {
	if c.HealthInterval <= 0 {
		return fmt.Errorf("invalid HEALTH_INTERVAL %s: must be positive", c.HealthInterval)
	}
	return nil
}
