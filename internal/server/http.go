package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
)

// HTTPServer serves the MCP server over the streamable HTTP transport.
// Besides the /mcp endpoint it exposes health probes for Kubernetes and
// records request metrics when instrumentation is enabled.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	healthChecker *HealthChecker
	metrics       *instrumentation.Metrics
	httpServer    *http.Server
}

// NewHTTPServer creates a new HTTP server for MCP. The metrics recorder may
// be nil when instrumentation is disabled.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, sc *ServerContext, metrics *instrumentation.Metrics) *HTTPServer {
	return &HTTPServer{
		mcpServer:     mcpServer,
		healthChecker: NewHealthChecker(sc),
		metrics:       metrics,
	}
}

// HealthChecker returns the health checker so callers can flip readiness.
func (s *HTTPServer) HealthChecker() *HealthChecker {
	return s.healthChecker
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records request count and duration per method, path and status.
func (s *HTTPServer) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

// Start starts the HTTP server in a blocking manner.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	// Streamable HTTP transport for MCP
	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", s.metricsMiddleware(streamable))

	// Health probes
	s.healthChecker.RegisterHealthEndpoints(mux)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("starting HTTP server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.healthChecker.SetReady(false)
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
