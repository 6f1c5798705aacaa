package postgre

import (
	"fmt"
	"strings"

	repo "todo-service/internal/task/repository"
)

const taskColumns = `id, task_name, "date", "time", priority, category, repeat, completed, created_at`

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Category != nil {
		args = append(args, string(*opt.Category))
		parts = append(parts, fmt.Sprintf("WHERE category = $%d", len(args)))
	}

	if opt.SortNewestFirst {
		parts = append(parts, "ORDER BY created_at DESC, seq DESC")
	} else {
		parts = append(parts, "ORDER BY seq ASC")
	}

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask.
// Returns an empty clause when opt names no field.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if opt.TaskName != nil {
		add("task_name", *opt.TaskName)
	}
	if opt.Date != nil {
		add(`"date"`, *opt.Date)
	}
	if opt.Time != nil {
		add(`"time"`, *opt.Time)
	}
	if opt.Priority != nil {
		add("priority", string(*opt.Priority))
	}
	if opt.Category != nil {
		add("category", string(*opt.Category))
	}
	if opt.Repeat != nil {
		add("repeat", string(*opt.Repeat))
	}

	return strings.Join(sets, ", "), args
}
