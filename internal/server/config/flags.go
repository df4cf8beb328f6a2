package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/radar/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   REST bind address (e.g. ":8000")
//	-g string   gRPC health bind address
//	-D string   database driver: postgres | sqlite
//	-d string   database DSN
//	-t int      store call timeout, seconds
//	-l string   log level
//	-strict     answer updates without fields with 400
//
// Arguments belonging to other sources (e.g. -c) are filtered out first.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-D", "-d", "-t", "-l"}, "-strict")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to serve REST on")
	fs.StringVar(&config.HealthAddrGRPC, "g", config.HealthAddrGRPC, "address and port of the gRPC health endpoint")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.StrictUpdate, "strict", config.StrictUpdate, "reject updates without fields with 400")

	storeTimeout := fs.Int("t", int(config.StoreTimeout.Seconds()), "store call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only an explicit -t overrides; the default would truncate sub-second values
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
		}
	})
	return nil
}
