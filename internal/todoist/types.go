package todoist

// Task is the read view of a Todoist task as returned by this adapter.
// Priority is the raw API value: 1 is the highest priority, 4 the lowest,
// inverted from the p1..p4 tokens of the filter grammar.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Priority    int      `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// Project is the read view of a Todoist project.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
	IsShared   bool   `json:"is_shared,omitempty"`
}

// TaskInput represents the input for creating a task.
// DueString takes precedence over DueDate when both are set.
type TaskInput struct {
	Title       string
	Description string
	DueString   string
	DueDate     string // YYYY-MM-DD
	Priority    int
	Labels      []string
}

// TaskUpdate represents a partial update of a task. Only non-nil fields are
// serialized into the outgoing request. DueString takes precedence over
// DueDate when both are set.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueString   *string
	DueDate     *string
	Labels      *[]string
	Priority    *int
}

// apiDue is the due object of the Todoist wire format. The service returns
// either a calendar date or a natural-language string, or both.
type apiDue struct {
	Date        string `json:"date,omitempty"`
	String      string `json:"string,omitempty"`
	Datetime    string `json:"datetime,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
}

// apiTask is the Todoist wire format of a task.
type apiTask struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Priority    int      `json:"priority"`
	Due         *apiDue  `json:"due"`
	CreatedAt   string   `json:"created_at"`
}

// apiProject is the Todoist wire format of a project.
type apiProject struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"is_favorite"`
	IsShared   bool   `json:"is_shared"`
}

// createTaskRequest is the request body for task creation.
type createTaskRequest struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// updateTaskRequest is the request body for a partial task update.
// Pointer fields keep omitted attributes out of the payload entirely.
type updateTaskRequest struct {
	Content     *string   `json:"content,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueString   *string   `json:"due_string,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
}

// toTask converts a Todoist wire task to our Task type
func toTask(t *apiTask) Task {
	if t == nil {
		return Task{}
	}

	result := Task{
		ID:          t.ID,
		Title:       t.Content,
		Description: t.Description,
		Labels:      t.Labels,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
	}

	// Prefer the calendar date, fall back to the natural-language string
	if t.Due != nil {
		if t.Due.Date != "" {
			result.DueDate = t.Due.Date
		} else {
			result.DueDate = t.Due.String
		}
	}

	return result
}

// toProject converts a Todoist wire project to our Project type
func toProject(p *apiProject) Project {
	if p == nil {
		return Project{}
	}

	return Project{
		ID:         p.ID,
		Name:       p.Name,
		IsFavorite: p.IsFavorite,
		IsShared:   p.IsShared,
	}
}
