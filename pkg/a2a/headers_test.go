package a2a

import "testing"

func TestNormalizeHeaders(t *testing.T) {
	rows := []HeaderRow{
		{Key: "Authorization", Value: "Bearer token"},
		{Key: "X-Custom", Value: "one"},
	}

	headers := NormalizeHeaders(rows)

	if len(headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(headers))
	}

	if headers["Authorization"] != "Bearer token" {
		t.Errorf("Expected 'Bearer token', got '%s'", headers["Authorization"])
	}
}

func TestNormalizeHeaders_DropsMalformedRows(t *testing.T) {
	rows := []HeaderRow{
		{Key: "", Value: "orphan value"},
		{Key: "orphan-key", Value: ""},
		{Key: "", Value: ""},
		{Key: "Kept", Value: "yes"},
	}

	headers := NormalizeHeaders(rows)

	if len(headers) != 1 {
		t.Fatalf("Expected 1 header, got %d", len(headers))
	}

	if headers["Kept"] != "yes" {
		t.Errorf("Expected 'yes', got '%s'", headers["Kept"])
	}
}

func TestNormalizeHeaders_LastWriteWins(t *testing.T) {
	rows := []HeaderRow{
		{Key: "Accept", Value: "text/plain"},
		{Key: "Accept", Value: "application/json"},
	}

	headers := NormalizeHeaders(rows)

	if headers["Accept"] != "application/json" {
		t.Errorf("Expected last value to win, got '%s'", headers["Accept"])
	}
}

func TestNormalizeHeaders_Empty(t *testing.T) {
	if headers := NormalizeHeaders(nil); len(headers) != 0 {
		t.Errorf("Expected empty map, got %v", headers)
	}
}
