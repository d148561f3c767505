// Package resources provides MCP resources for exposing Todoist account data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the project list used to resolve project IDs for task filters.
package resources
