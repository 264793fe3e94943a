package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkrasnovs/launchboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the launch data provider
//	-l int      bulk query limit
//	-f string   path of the local state database file
//	-t int      provider request timeout in seconds (0 disables)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the launch data provider")
	fs.IntVar(&cfg.QueryLimit, "l", cfg.QueryLimit, "bulk query limit")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path of the local state database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
