package a2a

import "github.com/google/uuid"

// AgentCardPath is the well-known path where an A2A agent publishes its
// self-description document.
const AgentCardPath = "/.well-known/agent-card.json"

// MethodMessageSend is the JSON-RPC method for sending a message to an agent.
const MethodMessageSend = "message/send"

// AgentCard provides metadata about a remote agent. It is immutable once
// fetched; its lifetime is a single request.
type AgentCard struct {
	Name            string       `json:"name"`
	Description     *string      `json:"description,omitempty"`
	URL             *string      `json:"url,omitempty"`
	Version         *string      `json:"version,omitempty"`
	ProtocolVersion *string      `json:"protocolVersion,omitempty"`
	Skills          []AgentSkill `json:"skills,omitempty"`
}

// AgentSkill describes a specific skill or capability of the agent.
type AgentSkill struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Part is a component of a message. Only the text variant is produced by
// this client; other kinds (file, data) are legal on the wire but are never
// emitted here.
type Part struct {
	Kind string `json:"kind"` // "text"
	Text string `json:"text"`
}

// Message is the protocol envelope sent to an agent. ContextID is reserved
// for multi-turn continuation and is left unset by this client.
type Message struct {
	Kind      string  `json:"kind"` // "message"
	MessageID string  `json:"messageId"`
	Role      string  `json:"role"` // "user" for outbound client messages
	Parts     []Part  `json:"parts"`
	ContextID *string `json:"contextId,omitempty"`
}

// SendMessageParams wraps the message under the params key of a
// message/send request.
type SendMessageParams struct {
	Message *Message `json:"message"`
}

// NewUserMessage builds an outbound user message carrying a single text part
// and a freshly generated message id.
func NewUserMessage(text string) *Message {
	return &Message{
		Kind:      "message",
		MessageID: uuid.NewString(),
		Role:      "user",
		Parts:     []Part{{Kind: "text", Text: text}},
	}
}
