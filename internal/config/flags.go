package config

import (
	"flag"
	"os"
	"time"

	"github.com/evizor/console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend REST base URL
//	-w string   websocket queue feed URL
//	-d string   device store path
//	-t int      request timeout in seconds
//
// os.Args is filtered down to the flags handled here via flagx.FilterArgs so
// flags owned by other components do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend REST base URL")
	fs.StringVar(&cfg.QueueFeedURL, "w", cfg.QueueFeedURL, "websocket queue feed URL")
	fs.StringVar(&cfg.DeviceDBPath, "d", cfg.DeviceDBPath, "device store path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
