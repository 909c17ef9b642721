package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/DarkShark-RAz/sim/pkg/api"
)

// serveCommand creates the 'serve' command
func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Starts the HTTP API server exposing the A2A invocation endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Value: "127.0.0.1",
				Usage: "Host to bind the server to",
			},
			&cli.IntFlag{
				Name:  "port",
				Value: 8000,
				Usage: "Port to bind the server to",
			},
			&cli.StringSliceFlag{
				Name:  "allow-origins",
				Usage: "Origins to allow for CORS",
			},
		},
		Action: serveCommandAction,
	}
}

func serveCommandAction(c *cli.Context) error {
	config := &api.ServerConfig{
		Host:         c.String("host"),
		Port:         c.Int("port"),
		AllowOrigins: c.StringSlice("allow-origins"),
	}

	server := api.NewServer(config)

	fmt.Printf("API endpoints available at: http://%s:%d\n", config.Host, config.Port)
	fmt.Printf("  POST /a2a/invoke - Invoke a remote A2A agent\n")
	fmt.Printf("  GET  /health     - Health check\n")

	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
