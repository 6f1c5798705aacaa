package repository

import (
	"time"

	"todo-service/internal/task"
)

// CreateTaskOptions holds parameters for inserting a new Task.
// The repository assigns the ID; Completed always starts false.
type CreateTaskOptions struct {
	TaskName  string
	Date      string
	Time      string
	Priority  task.Priority
	Category  task.Category
	Repeat    task.Repeat
	CreatedAt time.Time
}

// ListTasksOptions holds filter and ordering parameters for listing Tasks.
type ListTasksOptions struct {
	Category        *task.Category // nil = all categories
	SortNewestFirst bool           // false = backend natural order
}

// UpdateTaskOptions holds a partial overwrite. Nil fields are left unchanged.
type UpdateTaskOptions struct {
	ID       string
	TaskName *string
	Date     *string
	Time     *string
	Priority *task.Priority
	Category *task.Category
	Repeat   *task.Repeat
}
