package todoist_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/batch"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

const defaultTaskLimit = 10

// defaultPriorities is the priority set applied when the list tool is called
// without a priority argument.
var defaultPriorities = []int{1, 2, 3, 4}

// newClient constructs the API client for a tool call. A fresh client per
// call picks up token rotation without a restart. Tests swap this out to
// point handlers at a local server.
var newClient = todoist.NewClient

// parsePriorities parses the priority parameter, which can be a single number
// or an array of numbers between 1 and 4. A nil parameter yields the default
// set covering all priorities, preserving input order otherwise.
func parsePriorities(param interface{}) ([]int, error) {
	if param == nil {
		return defaultPriorities, nil
	}

	var raw []interface{}
	switch v := param.(type) {
	case float64:
		raw = []interface{}{v}
	case []interface{}:
		if len(v) == 0 {
			return defaultPriorities, nil
		}
		raw = v
	default:
		return nil, fmt.Errorf("priority must be a number or array of numbers")
	}

	priorities := make([]int, 0, len(raw))
	for i, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("priority[%d] must be a number", i)
		}
		p := int(f)
		if float64(p) != f || p < 1 || p > 4 {
			return nil, fmt.Errorf("priority[%d] must be an integer between 1 and 4", i)
		}
		priorities = append(priorities, p)
	}
	return priorities, nil
}

// parseLimit parses the limit parameter, falling back to the default when absent.
func parseLimit(param interface{}) (int, error) {
	if param == nil {
		return defaultTaskLimit, nil
	}
	f, ok := param.(float64)
	if !ok {
		return 0, fmt.Errorf("limit must be a number")
	}
	limit := int(f)
	if float64(limit) != f || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	return limit, nil
}

// RegisterTodoistTools registers all Todoist task tools with the MCP server.
// In read-only mode only the list tool is available; create, update, complete
// and delete require mutations to be enabled.
func RegisterTodoistTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	registerGetTasksTool(s, sc)

	if !readOnly {
		registerCreateTaskTool(s, sc)
		registerUpdateTaskTool(s, sc)
		registerCompleteTaskTool(s, sc)
		registerDeleteTaskTool(s, sc)
	}

	return nil
}

// registerGetTasksTool registers the task listing tool
func registerGetTasksTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	getTasksTool := mcp.NewTool("todoist_get_tasks",
		mcp.WithDescription("Get a list of tasks from Todoist with various filters"),
		mcp.WithString("project_id",
			mcp.Description("Filter tasks by project ID"),
		),
		mcp.WithString("search",
			mcp.Description("Only return tasks whose content matches this text"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date filter such as 'today', 'tomorrow' or 'overdue'"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority level (1-4) or array of priority levels to include"),
		),
		mcp.WithString("filter",
			mcp.Description("Additional Todoist filter expression appended verbatim"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: 10)"),
		),
	)

	s.AddTool(getTasksTool, common.InstrumentedToolHandlerWithOperation(
		"todoist_get_tasks", instrumentation.OperationList, sc, handleGetTasks))
}

// handleGetTasks lists tasks matching the supplied filters.
func handleGetTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	projectID, _ := args["project_id"].(string)
	search, _ := args["search"].(string)
	dueDate, _ := args["due_date"].(string)
	passthrough, _ := args["filter"].(string)

	priorities, err := parsePriorities(args["priority"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit, err := parseLimit(args["limit"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filter := todoist.BuildFilter(search, dueDate, priorities, passthrough)

	client := newClient()
	tasks, err := client.GetTasks(ctx, projectID, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get tasks: %v", err)), nil
	}

	// The REST API has no limit parameter; truncate after retrieval.
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}

	result, _ := json.MarshalIndent(tasks, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

// registerCreateTaskTool registers the task creation tool
func registerCreateTaskTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTaskTool := mcp.NewTool("todoist_create_task",
		mcp.WithDescription("Create a new task in Todoist"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The content of the task"),
		),
		mcp.WithString("description",
			mcp.Description("Detailed description for the task"),
		),
		mcp.WithString("due_string",
			mcp.Description("Natural language due date such as 'tomorrow at noon'. Takes precedence over due_date."),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in YYYY-MM-DD format. Ignored when due_string is set."),
		),
		mcp.WithNumber("priority",
			mcp.Description("Task priority from 1 (highest) to 4 (lowest)"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title, ok := args["title"].(string)
		if !ok || title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		input := todoist.TaskInput{Title: title}

		if description, ok := args["description"].(string); ok {
			input.Description = description
		}
		if dueString, ok := args["due_string"].(string); ok {
			input.DueString = dueString
		}
		if dueDate, ok := args["due_date"].(string); ok {
			input.DueDate = dueDate
		}

		if args["priority"] != nil {
			priorities, err := parsePriorities(args["priority"])
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(priorities) != 1 {
				return mcp.NewToolResultError("priority must be a single number between 1 and 4"), nil
			}
			input.Priority = priorities[0]
		}

		client := newClient()
		task, err := client.CreateTask(ctx, input)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
		}

		result, _ := json.MarshalIndent(task, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Task added:\n%s", string(result))), nil
	}

	s.AddTool(createTaskTool, common.InstrumentedToolHandlerWithOperation(
		"todoist_create_task", instrumentation.OperationCreate, sc, handler))
}

// registerUpdateTaskTool registers the partial task update tool
func registerUpdateTaskTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	updateTaskTool := mcp.NewTool("todoist_update_task",
		mcp.WithDescription("Update an existing task in Todoist. Only supplied fields are changed."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("title",
			mcp.Description("New content for the task"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the task"),
		),
		mcp.WithString("due_string",
			mcp.Description("New natural language due date. Takes precedence over due_date."),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date in YYYY-MM-DD format. Ignored when due_string is set."),
		),
		mcp.WithString("labels",
			mcp.Description("Label name (string) or array of label names replacing the task's labels"),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority from 1 (highest) to 4 (lowest)"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID, ok := args["task_id"].(string)
		if !ok || taskID == "" {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		update := todoist.TaskUpdate{}

		if title, ok := args["title"].(string); ok {
			update.Title = &title
		}
		if description, ok := args["description"].(string); ok {
			update.Description = &description
		}
		if dueString, ok := args["due_string"].(string); ok {
			update.DueString = &dueString
		}
		if dueDate, ok := args["due_date"].(string); ok {
			update.DueDate = &dueDate
		}

		if args["labels"] != nil {
			labels, err := batch.ParseStringOrArray(args["labels"], "labels")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			update.Labels = &labels
		}

		if args["priority"] != nil {
			priorities, err := parsePriorities(args["priority"])
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(priorities) != 1 {
				return mcp.NewToolResultError("priority must be a single number between 1 and 4"), nil
			}
			update.Priority = &priorities[0]
		}

		client := newClient()
		if err := client.UpdateTask(ctx, taskID, update); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Task updated: %s", taskID)), nil
	}

	s.AddTool(updateTaskTool, common.InstrumentedToolHandlerWithOperation(
		"todoist_update_task", instrumentation.OperationUpdate, sc, handler))
}

// registerCompleteTaskTool registers the task completion tool
func registerCompleteTaskTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	completeTaskTool := mcp.NewTool("todoist_complete_task",
		mcp.WithDescription("Mark one or more tasks as completed"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to complete"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskIDs, err := batch.ParseStringOrArray(args["task_id"], "task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		client := newClient()
		results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
			if err := client.CompleteTask(ctx, taskID); err != nil {
				return "", err
			}
			return "Task completed", nil
		})

		return mcp.NewToolResultText(batch.FormatResults(results)), nil
	}

	s.AddTool(completeTaskTool, common.InstrumentedToolHandlerWithOperation(
		"todoist_complete_task", instrumentation.OperationComplete, sc, handler))
}

// registerDeleteTaskTool registers the task deletion tool
func registerDeleteTaskTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	deleteTaskTool := mcp.NewTool("todoist_delete_task",
		mcp.WithDescription("Permanently delete one or more tasks"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to delete"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskIDs, err := batch.ParseStringOrArray(args["task_id"], "task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		client := newClient()
		results := batch.ProcessBatch(taskIDs, func(taskID string) (string, error) {
			if err := client.DeleteTask(ctx, taskID); err != nil {
				return "", err
			}
			return "Task deleted", nil
		})

		return mcp.NewToolResultText(batch.FormatResults(results)), nil
	}

	s.AddTool(deleteTaskTool, common.InstrumentedToolHandlerWithOperation(
		"todoist_delete_task", instrumentation.OperationDelete, sc, handler))
}
