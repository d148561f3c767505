// Package todoist provides a client for the Todoist REST v2 API.
//
// This package wraps the hosted Todoist service and provides functionality for:
//   - Creating, updating, completing and deleting tasks
//   - Listing tasks with a composed filter expression
//   - Listing projects
//
// # Authentication
//
// The client authenticates with a static API token read from the
// TODOIST_API_TOKEN environment variable. The token is read fresh every time
// a client is constructed and is not validated locally; a missing or invalid
// token surfaces as an HTTP 401 from the service.
//
// # Filter expressions
//
// Todoist exposes a small boolean query grammar for task listing (labels with
// "@", projects with "#", the operators "|", "&", "!", parentheses, and "\"
// as escape character). BuildFilter composes a filter string from structured
// inputs; caller-supplied fragments in that grammar are forwarded unmodified.
//
// # Example Usage
//
//	client := todoist.NewClient()
//
//	task, err := client.CreateTask(ctx, todoist.TaskInput{
//	    Title:     "Write report",
//	    DueString: "tomorrow",
//	    Priority:  2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filter := todoist.BuildFilter("report", "", []int{1, 2}, "")
//	tasks, err := client.GetTasks(ctx, "", filter)
package todoist
