package jsonrpc2

import (
	"encoding/json"
	"testing"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("message/send", map[string]string{"k": "v"})

	if req.JSONRPC != "2.0" {
		t.Errorf("Expected jsonrpc '2.0', got '%s'", req.JSONRPC)
	}

	if req.Method != "message/send" {
		t.Errorf("Expected method 'message/send', got '%s'", req.Method)
	}

	if req.ID == "" {
		t.Error("Expected a generated request id")
	}
}

func TestNewRequest_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		req := NewRequest("message/send", nil)
		if seen[req.ID] {
			t.Fatalf("Duplicate request id generated: %s", req.ID)
		}
		seen[req.ID] = true
	}
}

func TestDecodeResponse_Result(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":"abc","result":{"parts":[]}}`)

	resp, err := DecodeResponse(body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.IDString() != "abc" {
		t.Errorf("Expected id 'abc', got '%s'", resp.IDString())
	}

	if resp.Error != nil {
		t.Errorf("Expected no error member, got %v", resp.Error)
	}

	if len(resp.Result) == 0 {
		t.Error("Expected result to be retained")
	}
}

func TestDecodeResponse_Error(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":"abc","error":{"code":-32000,"message":"bad request"}}`)

	resp, err := DecodeResponse(body)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Error == nil {
		t.Fatal("Expected error member to be present")
	}

	if resp.Error.Code != -32000 {
		t.Errorf("Expected code -32000, got %d", resp.Error.Code)
	}

	if resp.Error.Message != "bad request" {
		t.Errorf("Expected message 'bad request', got '%s'", resp.Error.Message)
	}
}

func TestDecodeResponse_MalformedJSON(t *testing.T) {
	if _, err := DecodeResponse([]byte(`{"jsonrpc":`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestDecodeResponse_EmptySuccess(t *testing.T) {
	// Neither result nor error is a legal empty success.
	resp, err := DecodeResponse([]byte(`{"jsonrpc":"2.0","id":"abc"}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Error != nil || len(resp.Result) != 0 {
		t.Errorf("Expected empty response, got result=%s error=%v", resp.Result, resp.Error)
	}
}

func TestIDString_NumericID(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"jsonrpc":"2.0","id":7,"result":{}}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.IDString() != "7" {
		t.Errorf("Expected id '7', got '%s'", resp.IDString())
	}
}

func TestRequestMarshalShape(t *testing.T) {
	req := NewRequest("message/send", map[string]any{"message": "hi"})

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if decoded["jsonrpc"] != "2.0" {
		t.Errorf("Expected jsonrpc '2.0', got %v", decoded["jsonrpc"])
	}

	if decoded["method"] != "message/send" {
		t.Errorf("Expected method 'message/send', got %v", decoded["method"])
	}

	if _, ok := decoded["params"]; !ok {
		t.Error("Expected params to be present")
	}
}
