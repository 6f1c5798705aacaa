package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var (
		t                          task.Task
		id                         uuid.UUID
		priority, category, repeat string
	)
	err := row.Scan(&id, &t.TaskName, &t.Date, &t.Time, &priority, &category, &repeat, &t.Completed, &t.CreatedAt)
	if err != nil {
		return task.Task{}, err
	}
	t.ID = id.String()
	t.Priority = task.Priority(priority)
	t.Category = task.Category(category)
	t.Repeat = task.Repeat(repeat)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

// parseID returns false for ids that cannot exist in this table.
func parseID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(id)
	return u, err == nil
}

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, task_name, "date", "time", priority, category, repeat, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query,
		uuid.New(), opt.TaskName, opt.Date, opt.Time,
		string(opt.Priority), string(opt.Category), string(opt.Repeat), opt.CreatedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a task by id. Returns zero-value Task when not found.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	uid, ok := parseID(id)
	if !ok {
		return task.Task{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)
	t, err := scanTask(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the provided columns. Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	uid, ok := parseID(opt.ID)
	if !ok {
		return task.Task{}, nil
	}

	sets, args := r.buildUpdateQuery(opt)
	if sets == "" {
		return r.GetOneTask(ctx, opt.ID)
	}

	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d RETURNING %s`, sets, len(args), taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// ToggleTaskCompletion flips completed in a single statement.
func (r *implRepository) ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error) {
	uid, ok := parseID(id)
	if !ok {
		return task.Task{}, nil
	}

	query := fmt.Sprintf(`UPDATE tasks SET completed = NOT completed WHERE id = $1 RETURNING %s`, taskColumns)
	t, err := scanTask(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleTaskCompletion"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task row and reports whether one existed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	uid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, uid)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}
