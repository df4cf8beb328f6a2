package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from a dotenv file into the process
// environment. Variables that are already set win. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays config with environment variables:
//
//	HTTP_ADDR, HEALTH_ADDR_GRPC, DB_DRIVER, DATABASE_DSN,
//	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME,
//	STORE_TIMEOUT, SHUTDOWN_TIMEOUT, HEALTH_INTERVAL (Go durations),
//	BCRYPT_COST (int), STRICT_UPDATE (bool), LOG_LEVEL.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"HTTP_ADDR":        &config.HTTPAddr,
		"HEALTH_ADDR_GRPC": &config.HealthAddrGRPC,
		"DB_DRIVER":        &config.DatabaseDriver,
		"DATABASE_DSN":     &config.DatabaseDSN,
		"DB_HOST":          &config.DBHost,
		"DB_PORT":          &config.DBPort,
		"DB_USER":          &config.DBUser,
		"DB_PASSWORD":      &config.DBPassword,
		"DB_NAME":          &config.DBName,
		"LOG_LEVEL":        &config.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"STORE_TIMEOUT":    &config.StoreTimeout,
		"SHUTDOWN_TIMEOUT": &config.ShutdownTimeout,
		"HEALTH_INTERVAL":  &config.HealthInterval,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	if v, ok := lookup("BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		config.BcryptCost = n
	}

	if v, ok := lookup("STRICT_UPDATE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STRICT_UPDATE: %w", err)
		}
		config.StrictUpdate = b
	}

	return nil
}
