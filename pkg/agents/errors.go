package agents

import "fmt"

// ConnectionError is raised when the discovery phase fails: the agent is
// unreachable, returns a non-2xx status, serves malformed JSON, or times out.
type ConnectionError struct {
	message string
	cause   error
}

func (e *ConnectionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *ConnectionError) Unwrap() error {
	return e.cause
}

// CommunicationError is raised when the send phase fails: the agent was
// reachable but the message/send call itself did not succeed.
type CommunicationError struct {
	message string
	cause   error
}

func (e *CommunicationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *CommunicationError) Unwrap() error {
	return e.cause
}

// ProtocolError is raised when the agent responded but reported an
// application-level JSON-RPC error.
type ProtocolError struct {
	message string
	cause   error
}

func (e *ProtocolError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *ProtocolError) Unwrap() error {
	return e.cause
}
