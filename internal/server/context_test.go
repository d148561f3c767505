package server

import (
	"context"
	"testing"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
)

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Context() == nil {
		t.Error("Context() returned nil")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shut down")
	}
	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	// Context should be cancelled
	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContext_InstrumentationHooks(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	auditLogger := instrumentation.NewAuditLogger(nil)
	sc.SetAuditLogger(auditLogger)
	if sc.AuditLogger() != auditLogger {
		t.Error("AuditLogger() should return the logger set via SetAuditLogger")
	}

	metrics := &instrumentation.Metrics{}
	sc.SetMetrics(metrics)
	if sc.Metrics() != metrics {
		t.Error("Metrics() should return the recorder set via SetMetrics")
	}
}
