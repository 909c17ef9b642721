// Package cli wires the sim command line tools.
package cli

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

// Version information - will be set during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// NewApp creates and configures the CLI application
func NewApp() *cli.App {
	return &cli.App{
		Name:    "sim",
		Usage:   "A2A agent client tools",
		Version: Version,
		Commands: []*cli.Command{
			sendCommand(),
			serveCommand(),
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}
}
