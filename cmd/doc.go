// Package cmd implements the command-line interface for todoist-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide Todoist tools for AI assistants
//   - add, list, done, rm, update: Manage tasks directly from the terminal
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
