// Package server provides the MCP server context, HTTP transport, health
// probes and the dedicated metrics server for the todoist-mcp application.
//
// # Key Components
//
// ServerContext carries shutdown state and the instrumentation hooks (metrics
// recorder and audit logger) that tool handlers use. It deliberately does not
// cache Todoist API clients: each tool invocation builds a fresh client from
// the environment so token rotation takes effect immediately.
//
// HTTPServer exposes the MCP server over the streamable HTTP transport on
// /mcp, along with Kubernetes health probes:
//   - /healthz: liveness probe
//   - /readyz: readiness probe
//   - /healthz/detailed: uptime and status
//
// MetricsServer serves Prometheus metrics on a dedicated port (default
// :9090), isolating operational metrics from application traffic.
package server
