package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "test_operation")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithTool(t *testing.T) {
	logger := slog.Default()
	result := WithTool(logger, "test_tool")
	if result == nil {
		t.Error("WithTool returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("test_op")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "test_op" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "test_op")
	}
}

func TestToolAttr(t *testing.T) {
	attr := Tool("todoist_create_task")
	if attr.Key != KeyTool {
		t.Errorf("Tool key = %q, want %q", attr.Key, KeyTool)
	}
	if attr.Value.String() != "todoist_create_task" {
		t.Errorf("Tool value = %q, want %q", attr.Value.String(), "todoist_create_task")
	}
}

func TestTaskIDAttr(t *testing.T) {
	attr := TaskID("7421")
	if attr.Key != KeyTaskID {
		t.Errorf("TaskID key = %q, want %q", attr.Key, KeyTaskID)
	}
	if attr.Value.String() != "7421" {
		t.Errorf("TaskID value = %q, want %q", attr.Value.String(), "7421")
	}
}

func TestProjectAttr(t *testing.T) {
	attr := Project("220")
	if attr.Key != KeyProject {
		t.Errorf("Project key = %q, want %q", attr.Key, KeyProject)
	}
	if attr.Value.String() != "220" {
		t.Errorf("Project value = %q, want %q", attr.Value.String(), "220")
	}
}

func TestTransportAttr(t *testing.T) {
	attr := Transport("stdio")
	if attr.Key != KeyTransport {
		t.Errorf("Transport key = %q, want %q", attr.Key, KeyTransport)
	}
	if attr.Value.String() != "stdio" {
		t.Errorf("Transport value = %q, want %q", attr.Value.String(), "stdio")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"", "<empty>"},
		{"abc123", "[token:6 chars]"},
		{"a_very_long_token_string", "[token:24 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
