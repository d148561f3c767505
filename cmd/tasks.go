package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/todoist-mcp/internal/todoist"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		dueString   string
		dueDate     string
		priority    int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task to Todoist.

The due date can be given in natural language (--due "tomorrow at noon") or
as a calendar date (--due-date 2026-09-01). When both are given, --due wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if priority != 0 && (priority < 1 || priority > 4) {
				return fmt.Errorf("priority must be between 1 and 4")
			}

			client := todoist.NewClient()
			task, err := client.CreateTask(cmd.Context(), todoist.TaskInput{
				Title:       args[0],
				Description: description,
				DueString:   dueString,
				DueDate:     dueDate,
				Priority:    priority,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Task added: %s (ID: %s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Detailed description for the task")
	cmd.Flags().StringVar(&dueString, "due", "", "Natural language due date, e.g. 'tomorrow at noon'")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date in YYYY-MM-DD format (ignored when --due is set)")
	cmd.Flags().IntVar(&priority, "priority", 0, "Task priority from 1 (highest) to 4 (lowest)")

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		projectID   string
		search      string
		dueDate     string
		priorities  []int
		passthrough string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List active tasks, optionally narrowed by project, search text, due date
filter, priority levels and an additional Todoist filter expression.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range priorities {
				if p < 1 || p > 4 {
					return fmt.Errorf("priority must be between 1 and 4, got %d", p)
				}
			}
			if limit < 1 {
				return fmt.Errorf("limit must be a positive integer")
			}
			if len(priorities) == 0 {
				priorities = []int{1, 2, 3, 4}
			}

			filter := todoist.BuildFilter(search, dueDate, priorities, passthrough)

			client := todoist.NewClient()
			tasks, err := client.GetTasks(cmd.Context(), projectID, filter)
			if err != nil {
				return err
			}
			if len(tasks) > limit {
				tasks = tasks[:limit]
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found")
				return nil
			}

			for _, task := range tasks {
				line := fmt.Sprintf("%s  [p%d] %s", task.ID, task.Priority, task.Title)
				if task.DueDate != "" {
					line += fmt.Sprintf(" (due %s)", task.DueDate)
				}
				if len(task.Labels) > 0 {
					line += " @" + strings.Join(task.Labels, " @")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only list tasks in this project ID")
	cmd.Flags().StringVar(&search, "search", "", "Only list tasks whose content matches this text")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date filter such as 'today' or 'overdue'")
	cmd.Flags().IntSliceVar(&priorities, "priority", nil, "Priority levels (1-4) to include, repeatable")
	cmd.Flags().StringVar(&passthrough, "filter", "", "Additional Todoist filter expression appended verbatim")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of tasks to show")

	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>...",
		Short: "Mark one or more tasks as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := todoist.NewClient()
			for _, taskID := range args {
				if err := client.CompleteTask(cmd.Context(), taskID); err != nil {
					return err
				}
				fmt.Printf("Task completed: %s\n", taskID)
			}
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>...",
		Short: "Permanently delete one or more tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := todoist.NewClient()
			for _, taskID := range args {
				if err := client.DeleteTask(cmd.Context(), taskID); err != nil {
					return err
				}
				fmt.Printf("Task deleted: %s\n", taskID)
			}
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		dueString   string
		dueDate     string
		labels      string
		priority    int
	)

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update fields of an existing task",
		Long: `Update an existing task. Only flags that are explicitly set are sent to
the API; everything else stays unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := todoist.TaskUpdate{}

			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("due") {
				update.DueString = &dueString
			}
			if cmd.Flags().Changed("due-date") {
				update.DueDate = &dueDate
			}
			if cmd.Flags().Changed("labels") {
				parsed := parseCommaSeparatedList(labels)
				if parsed == nil {
					parsed = []string{}
				}
				update.Labels = &parsed
			}
			if cmd.Flags().Changed("priority") {
				if priority < 1 || priority > 4 {
					return fmt.Errorf("priority must be between 1 and 4")
				}
				update.Priority = &priority
			}

			client := todoist.NewClient()
			if err := client.UpdateTask(cmd.Context(), args[0], update); err != nil {
				return err
			}

			fmt.Printf("Task updated: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New content for the task")
	cmd.Flags().StringVar(&description, "description", "", "New description for the task")
	cmd.Flags().StringVar(&dueString, "due", "", "New natural language due date (wins over --due-date)")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "New due date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&labels, "labels", "", "Comma-separated label names replacing the task's labels")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority from 1 (highest) to 4 (lowest)")

	return cmd
}

// parseCommaSeparatedList parses a comma-separated string into a slice,
// trimming whitespace from each element and filtering out empty strings.
// Returns nil if the input is empty or contains only whitespace/commas.
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
