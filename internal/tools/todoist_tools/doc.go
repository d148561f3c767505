// Package todoist_tools provides MCP tools for managing Todoist tasks.
//
// This package implements MCP (Model Context Protocol) tools that wrap the
// Todoist REST client, providing task management capabilities for AI
// assistants.
//
// # Available Tools
//
//   - todoist_get_tasks: List tasks with project, search, due date and
//     priority filters
//   - todoist_create_task: Create a new task
//   - todoist_update_task: Update the supplied fields of a task
//   - todoist_complete_task: Mark one or more tasks as completed
//   - todoist_delete_task: Permanently delete one or more tasks
//
// In read-only mode only todoist_get_tasks is registered; the mutating tools
// require the server to be started with mutations enabled.
//
// # Authentication
//
// Every tool call constructs a fresh client that reads TODOIST_API_TOKEN
// from the environment, so a rotated token takes effect without a restart.
// A missing token surfaces as a 401 from the Todoist API.
package todoist_tools
