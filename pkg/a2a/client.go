package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DarkShark-RAz/sim/internal/jsonrpc2"
)

// ClientConfig holds configuration for the A2A client
type ClientConfig struct {
	// Timeout applied independently to each network call
	Timeout time.Duration
	// Custom HTTP client (optional)
	HTTPClient *http.Client
	// Additional headers to include in requests; these may override the
	// defaults the client sets itself
	Headers map[string]string
}

// DefaultClientConfig returns a default client configuration
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Timeout: 30 * time.Second,
		Headers: make(map[string]string),
	}
}

// Client is an A2A client for communicating with a single remote agent.
// Discovery and send are strictly sequential single attempts; each call owns
// an independent cancellation context armed with the configured timeout and
// disarmed on completion.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new A2A client for the given base URL
func NewClient(baseURL string, config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}

	// Per-call contexts carry the deadline, so the HTTP client itself has
	// no timeout of its own.
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// ResolveAgentCard fetches the remote agent's self-description document from
// the well-known discovery path. A single attempt only; no retries.
func (c *Client) ResolveAgentCard(ctx context.Context) (*AgentCard, error) {
	cardURL, err := url.JoinPath(c.baseURL, AgentCardPath)
	if err != nil {
		return nil, fmt.Errorf("failed to construct agent card URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cardURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{URL: cardURL, Timeout: c.config.Timeout}
		}
		return nil, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var card AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode agent card: %w", err)
	}

	return &card, nil
}

// SendMessage sends a single message/send JSON-RPC call to the agent's base
// URL and returns the raw response envelope. The JSON-RPC error member, if
// present, is surfaced to the caller, not resolved here.
func (c *Client) SendMessage(ctx context.Context, message *Message) (*jsonrpc2.Response, error) {
	request := jsonrpc2.NewRequest(MethodMessageSend, SendMessageParams{Message: message})

	reqBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{URL: c.baseURL, Timeout: c.config.Timeout}
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return jsonrpc2.DecodeResponse(body)
}
