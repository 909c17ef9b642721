package a2a

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DarkShark-RAz/sim/internal/jsonrpc2"
)

// ExtractText normalizes the heterogeneous result shapes an A2A agent may
// legally return into a single text string. Four shapes are tried in strict
// priority order: a direct message, a task with an embedded message, a task
// with artifacts, and a task status message. The first match wins. If no
// shape matches, or the result is absent or not an object, the empty string
// is a valid terminal value, not an error: an agent may legitimately produce
// no text.
//
// A JSON-RPC error member always fails, regardless of any result present.
func ExtractText(resp *jsonrpc2.Response) (string, error) {
	if resp.Error != nil {
		return "", fmt.Errorf("A2A error: %s", resp.Error.Message)
	}

	result := decodeObject(resp.Result)
	if result == nil {
		return "", nil
	}

	extractors := []func(map[string]any) (string, bool){
		extractMessageText,
		extractEmbeddedMessageText,
		extractArtifactText,
		extractStatusText,
	}
	for _, extract := range extractors {
		if text, ok := extract(result); ok {
			return text, nil
		}
	}
	return "", nil
}

// decodeObject parses raw result JSON into a map, or nil if the result is
// absent or not an object. The envelope decode already guaranteed the bytes
// are well-formed JSON.
func decodeObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return obj
}

// extractMessageText handles a direct message result: {parts: [...]}.
func extractMessageText(result map[string]any) (string, bool) {
	parts, ok := result["parts"].([]any)
	if !ok {
		return "", false
	}
	return joinTextParts(parts), true
}

// extractEmbeddedMessageText handles a task with an embedded message:
// {message: {parts: [...]}}.
func extractEmbeddedMessageText(result map[string]any) (string, bool) {
	message, ok := result["message"].(map[string]any)
	if !ok {
		return "", false
	}
	parts, ok := message["parts"].([]any)
	if !ok {
		return "", false
	}
	return joinTextParts(parts), true
}

// extractArtifactText handles a task with artifacts: {artifacts: [{parts:
// [...]}, ...]}. Text is collected in artifact order. An artifact list that
// yields no text at all does not match, so extraction falls through to the
// status message shape.
func extractArtifactText(result map[string]any) (string, bool) {
	artifacts, ok := result["artifacts"].([]any)
	if !ok {
		return "", false
	}

	var texts []string
	for _, a := range artifacts {
		artifact, ok := a.(map[string]any)
		if !ok {
			continue
		}
		parts, ok := artifact["parts"].([]any)
		if !ok {
			continue
		}
		texts = append(texts, collectTextParts(parts)...)
	}
	if len(texts) == 0 {
		return "", false
	}
	return strings.Join(texts, "\n"), true
}

// extractStatusText handles a task status message: {status: {message:
// {parts: [...]}}}.
func extractStatusText(result map[string]any) (string, bool) {
	status, ok := result["status"].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := status["message"].(map[string]any)
	if !ok {
		return "", false
	}
	parts, ok := message["parts"].([]any)
	if !ok {
		return "", false
	}
	return joinTextParts(parts), true
}

// collectTextParts filters a parts array to text parts in source order.
// Non-text kinds (file, data) are excluded; a part whose text field is
// missing or not a string is excluded as well rather than coerced.
func collectTextParts(parts []any) []string {
	var texts []string
	for _, p := range parts {
		part, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if kind, ok := part["kind"].(string); !ok || kind != "text" {
			continue
		}
		text, ok := part["text"].(string)
		if !ok {
			continue
		}
		texts = append(texts, text)
	}
	return texts
}

func joinTextParts(parts []any) string {
	return strings.Join(collectTextParts(parts), "\n")
}
