// Package api exposes the A2A invocation flow over HTTP. It owns request
// validation and the outward response envelope; the protocol work itself
// lives in pkg/a2a and pkg/agents.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DarkShark-RAz/sim/pkg/a2a"
	"github.com/DarkShark-RAz/sim/pkg/agents"
)

// DefaultTimeoutMs is applied when the caller omits the timeout field.
const DefaultTimeoutMs = 30000

// ServerConfig contains configuration for the API server
type ServerConfig struct {
	Host         string
	Port         int
	AllowOrigins []string
}

// Server represents the HTTP API server
type Server struct {
	config *ServerConfig
	engine *gin.Engine
}

// InvokeRequest is the inbound contract. The schema layer guarantees the
// core receives a well-typed server URL, non-empty prompt, numeric timeout
// and a header list; that layer is this struct plus validateInvokeRequest.
type InvokeRequest struct {
	ServerURL string          `json:"serverUrl"`
	Prompt    string          `json:"prompt"`
	Timeout   *int64          `json:"timeout,omitempty"` // milliseconds
	Headers   []a2a.HeaderRow `json:"headers,omitempty"`
}

// ErrorResponse is the outbound failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new API server instance
func NewServer(config *ServerConfig) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(config.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = config.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	engine.Use(cors.New(corsConfig))

	server := &Server{
		config: config,
		engine: engine,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.engine.POST("/a2a/invoke", s.handleInvoke)
	s.engine.GET("/health", s.handleHealth)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the HTTP server
func (s *Server) Start() error {
	address := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	slog.Info("starting A2A API server", "address", address)
	return s.engine.Run(address)
}

// handleInvoke runs one A2A invocation: validate, discover, send, normalize.
func (s *Server) handleInvoke(c *gin.Context) {
	var req InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	if err := validateInvokeRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	timeoutMs := int64(DefaultTimeoutMs)
	if req.Timeout != nil {
		timeoutMs = *req.Timeout
	}

	agent := agents.NewRemoteA2aAgent(req.ServerURL, &agents.RemoteA2aAgentConfig{
		Timeout: time.Duration(timeoutMs) * time.Millisecond,
		Headers: req.Headers,
	})

	result, err := agent.Invoke(c.Request.Context(), req.Prompt)
	if err != nil {
		status := classifyError(err)
		slog.Error("A2A invocation failed", "serverUrl", req.ServerURL, "status", status, "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleHealth returns server health status
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// validateInvokeRequest enforces the inbound contract: absolute server URL,
// non-empty prompt, non-negative timeout.
func validateInvokeRequest(req *InvokeRequest) error {
	if req.ServerURL == "" {
		return errors.New("serverUrl is required")
	}
	parsed, err := url.Parse(req.ServerURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("serverUrl must be an absolute URL: %s", req.ServerURL)
	}
	if req.Prompt == "" {
		return errors.New("prompt is required")
	}
	if req.Timeout != nil && *req.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}
	return nil
}

// classifyError maps phase-tagged failures to outward status codes: any
// discovery, send or agent-reported failure is a 502, anything unanticipated
// a 500.
func classifyError(err error) int {
	var connErr *agents.ConnectionError
	var commErr *agents.CommunicationError
	var protoErr *agents.ProtocolError
	if errors.As(err, &connErr) || errors.As(err, &commErr) || errors.As(err, &protoErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
