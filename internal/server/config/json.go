package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/radar/internal/flagx"
	"github.com/dmitrijs2005/radar/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted. Only keys
// present in the file override the current values.
type JsonConfig struct {
	HTTPAddr        string          `json:"http_addr"`
	HealthAddrGRPC  *string         `json:"health_addr_grpc"`
	DatabaseDriver  string          `json:"database_driver"`
	DatabaseDSN     string          `json:"database_dsn"`
	DBHost          string          `json:"db_host"`
	DBPort          string          `json:"db_port"`
	DBUser          string          `json:"db_user"`
	DBPassword      string          `json:"db_password"`
	DBName          string          `json:"db_name"`
	StoreTimeout    *timex.Duration `json:"store_timeout"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	HealthInterval  *timex.Duration `json:"health_interval"`
	BcryptCost      int             `json:"bcrypt_cost"`
	StrictUpdate    *bool           `json:"strict_update"`
	LogLevel        string          `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c/-config in args.
// Without the flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DBHost, c.DBHost)
	setString(&config.DBPort, c.DBPort)
	setString(&config.DBUser, c.DBUser)
	setString(&config.DBPassword, c.DBPassword)
	setString(&config.DBName, c.DBName)
	setString(&config.LogLevel, c.LogLevel)

	if c.HealthAddrGRPC != nil {
		config.HealthAddrGRPC = *c.HealthAddrGRPC
	}
	if c.StoreTimeout != nil {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.HealthInterval != nil {
		config.HealthInterval = c.HealthInterval.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.StrictUpdate != nil {
		config.StrictUpdate = *c.StrictUpdate
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
