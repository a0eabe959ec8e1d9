package config

import (
	"flag"
	"io"
	"strings"
	"time"
)

// envFileList collects repeated -e / -env-file flags.
// It implements the flag.Value interface.
type envFileList []string

// String returns the files joined with commas.
func (l *envFileList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one or more comma-separated file paths.
func (l *envFileList) Set(s string) error {
	for _, file := range strings.Split(s, ",") {
		if file = strings.TrimSpace(file); file != "" {
			*l = append(*l, file)
		}
	}

	return nil
}

// ParseFlags parses runtime option flags from args.
//
// Flags:
//
//	-e/-env-file dotenv file path, repeatable or comma separated
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s", "1m")
func ParseFlags(args []string) (*Options, error) {
	var envFiles envFileList
	var shutdownTimeout time.Duration

	fs := flag.NewFlagSet("options", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&envFiles, "e", "Dotenv file path")
	fs.Var(&envFiles, "env-file", "Dotenv file path (alias)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Options{
		EnvFiles:        envFiles,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
