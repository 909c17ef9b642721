package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/DarkShark-RAz/sim/pkg/a2a"
	"github.com/DarkShark-RAz/sim/pkg/agents"
)

// sendCommand creates the 'send' command
func sendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Send a prompt to a remote A2A agent and print its reply",
		ArgsUsage: "PROMPT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Base URL of the remote agent",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  "timeout",
				Value: 30000,
				Usage: "Timeout in milliseconds for each network call",
			},
			&cli.StringSliceFlag{
				Name:  "header",
				Usage: "Custom header as 'Key: Value' (repeatable)",
			},
		},
		Action: sendCommandAction,
	}
}

func sendCommandAction(c *cli.Context) error {
	prompt := strings.Join(c.Args().Slice(), " ")
	if prompt == "" {
		return fmt.Errorf("a prompt argument is required")
	}

	headers, err := parseHeaderFlags(c.StringSlice("header"))
	if err != nil {
		return err
	}

	agent := agents.NewRemoteA2aAgent(c.String("url"), &agents.RemoteA2aAgentConfig{
		Timeout: time.Duration(c.Int64("timeout")) * time.Millisecond,
		Headers: headers,
	})

	result, err := agent.Invoke(c.Context, prompt)
	if err != nil {
		return err
	}

	fmt.Printf("Agent: %s\n", result.AgentName)
	fmt.Printf("Task:  %s\n", result.TaskID)
	fmt.Println()
	fmt.Println(result.Response)
	return nil
}

// parseHeaderFlags splits repeated --header flags on the first colon. Rows
// that survive the split are still subject to header normalization, which
// drops empty keys or values.
func parseHeaderFlags(values []string) ([]a2a.HeaderRow, error) {
	rows := make([]a2a.HeaderRow, 0, len(values))
	for _, v := range values {
		key, value, found := strings.Cut(v, ":")
		if !found {
			return nil, fmt.Errorf("invalid header %q, expected 'Key: Value'", v)
		}
		rows = append(rows, a2a.HeaderRow{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return rows, nil
}
