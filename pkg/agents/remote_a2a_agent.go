// Package agents orchestrates a single round trip against a remote A2A
// agent: discover its card, send one message, and normalize whatever shape
// it answers with into plain text.
package agents

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DarkShark-RAz/sim/pkg/a2a"
)

// StatusCompleted is the terminal status reported on a successful invocation.
const StatusCompleted = "completed"

// RemoteA2aAgentConfig holds configuration for RemoteA2aAgent
type RemoteA2aAgentConfig struct {
	// Timeout applied independently to the discovery and send calls
	Timeout time.Duration
	// Custom HTTP client (optional)
	HTTPClient *http.Client
	// Caller-supplied header rows, forwarded verbatim after normalization
	Headers []a2a.HeaderRow
}

// DefaultRemoteA2aAgentConfig returns default configuration
func DefaultRemoteA2aAgentConfig() *RemoteA2aAgentConfig {
	return &RemoteA2aAgentConfig{
		Timeout: 30 * time.Second,
	}
}

// InvocationResult is the success payload of a remote agent invocation.
type InvocationResult struct {
	Response  string `json:"response"`
	AgentName string `json:"agentName"`
	TaskID    string `json:"taskId"`
	Status    string `json:"status"`
}

// RemoteA2aAgent invokes a remote A2A agent at a fixed base URL. All
// per-request state (message id, request id, header map) is allocated fresh
// per call; instances hold no mutable shared state.
type RemoteA2aAgent struct {
	baseURL string
	client  *a2a.Client
}

// NewRemoteA2aAgent creates a remote agent handle for the given server URL
func NewRemoteA2aAgent(serverURL string, config *RemoteA2aAgentConfig) *RemoteA2aAgent {
	if config == nil {
		config = DefaultRemoteA2aAgentConfig()
	}

	client := a2a.NewClient(serverURL, &a2a.ClientConfig{
		Timeout:    config.Timeout,
		HTTPClient: config.HTTPClient,
		Headers:    a2a.NormalizeHeaders(config.Headers),
	})

	return &RemoteA2aAgent{
		baseURL: serverURL,
		client:  client,
	}
}

// Invoke runs one discovery+send round trip and returns the normalized
// result. Discovery and send are strictly sequential; the send does not
// start unless discovery succeeded. Each phase fails fast and is re-emitted
// tagged with its phase, so callers can distinguish "could not reach agent"
// from "agent rejected the request". The agent name is only known after
// discovery, so discovery failures cannot reference it.
func (r *RemoteA2aAgent) Invoke(ctx context.Context, prompt string) (*InvocationResult, error) {
	card, err := r.client.ResolveAgentCard(ctx)
	if err != nil {
		return nil, &ConnectionError{
			message: fmt.Sprintf("failed to connect to A2A agent at %s", r.baseURL),
			cause:   err,
		}
	}

	message := a2a.NewUserMessage(prompt)

	resp, err := r.client.SendMessage(ctx, message)
	if err != nil {
		return nil, &CommunicationError{
			message: fmt.Sprintf("failed to send message to agent %q", card.Name),
			cause:   err,
		}
	}

	text, err := a2a.ExtractText(resp)
	if err != nil {
		return nil, &ProtocolError{
			message: fmt.Sprintf("agent %q rejected the request", card.Name),
			cause:   err,
		}
	}

	taskID := resp.IDString()
	slog.Info("A2A invocation completed", "agent", card.Name, "taskId", taskID)

	return &InvocationResult{
		Response:  text,
		AgentName: card.Name,
		TaskID:    taskID,
		Status:    StatusCompleted,
	}, nil
}
