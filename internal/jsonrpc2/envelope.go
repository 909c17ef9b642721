// Package jsonrpc2 provides the JSON-RPC 2.0 envelope types used by the A2A
// client. Requests carry a freshly generated id per call; responses are
// decoded without schema enforcement beyond JSON well-formedness so that the
// protocol layer can inspect heterogeneous result shapes itself.
package jsonrpc2

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Version is the JSON-RPC protocol version sent on every request.
const Version = "2.0"

// Request is a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"` // "2.0"
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// Error is a standard JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface for Error
func (e *Error) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// Response is a JSON-RPC 2.0 response envelope. Result is kept as raw JSON:
// the A2A protocol allows several result shapes and the normalizer decides
// how to interpret them. A response with neither result nor error is treated
// as an empty successful result.
type Response struct {
	JSONRPC string          `json:"jsonrpc,omitempty"` // "2.0"
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// NewRequest builds a request with a fresh unique id. IDs only need to be
// practically unique per outgoing call, not cryptographically strong.
func NewRequest(method string, params any) *Request {
	return &Request{
		JSONRPC: Version,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}
}

// DecodeResponse parses a raw response body into a Response envelope.
// Malformed JSON is a hard failure; it is never silently coerced.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON-RPC response: %w", err)
	}
	return &resp, nil
}

// IDString returns the response id as a string. Servers echo the string id
// we generate, but a numeric id from a loose implementation is stringified
// rather than rejected.
func (r *Response) IDString() string {
	switch id := r.ID.(type) {
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", id)
	}
}
