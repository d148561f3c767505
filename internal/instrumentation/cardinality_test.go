package instrumentation

import (
	"strings"
	"testing"
)

func TestTruncateFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		expected string
	}{
		{"empty", "", ""},
		{"short", "(p1|p2)", "(p1|p2)"},
		{"exactly at limit", strings.Repeat("a", maxFilterAttrLen), strings.Repeat("a", maxFilterAttrLen)},
		{"over limit", strings.Repeat("a", maxFilterAttrLen+10), strings.Repeat("a", maxFilterAttrLen) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateFilter(tt.filter)
			if result != tt.expected {
				t.Errorf("TruncateFilter() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationList:     "list",
		OperationCreate:   "create",
		OperationUpdate:   "update",
		OperationComplete: "complete",
		OperationDelete:   "delete",
		OperationProjects: "projects",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
