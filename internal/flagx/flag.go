// Package flagx lets several independent flag sets share one command line:
// each source keeps only the arguments it understands before parsing.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// name strips leading dashes so that "-a" and "--a" are the same flag, the
// way the standard flag package treats them.
func name(arg string) string {
	return strings.TrimLeft(arg, "-")
}

// FilterArgs returns the subset of args that belongs to the allowed flags.
//
// Supported forms:
//
//	-d dsn        value as the next argument
//	--d=dsn       value joined with '='
//	-strict       boolean flag listed in boolFlags, never consumes a value
//
// Allowed names may be given with one or two dashes. The result is never nil.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	known := make(map[string]bool, len(allowed)+len(boolFlags))
	for _, f := range allowed {
		known[name(f)] = false
	}
	for _, f := range boolFlags {
		known[name(f)] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		key, _, joined := strings.Cut(arg, "=")
		isBool, ok := known[name(key)]
		if !ok {
			continue
		}

		out = append(out, arg)
		if joined || isBool {
			continue
		}

		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFile extracts the JSON config path passed via -c or -config.
// Everything else on the command line is ignored. Empty when absent.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
