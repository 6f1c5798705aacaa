package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// CreateTask stores a new Task under a fresh UUID.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	t := task.Task{
		ID:        uuid.NewString(),
		TaskName:  opt.TaskName,
		Date:      opt.Date,
		Time:      opt.Time,
		Priority:  opt.Priority,
		Category:  opt.Category,
		Repeat:    opt.Repeat,
		Completed: false,
		CreatedAt: opt.CreatedAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return t, nil
}

// GetOneTask returns a zero Task when id is unknown.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tasks[id], nil
}

// ListTasks returns a copy of the matching tasks.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	r.mu.RLock()
	out := make([]task.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.Category != nil && t.Category != *opt.Category {
			continue
		}
		out = append(out, t)
	}
	r.mu.RUnlock()

	if opt.SortNewestFirst {
		// Reversed first so equal timestamps keep the latest insertion on top.
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

// UpdateTask applies the non-nil fields of opt. Returns a zero Task when id is unknown.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return task.Task{}, nil
	}
	if opt.TaskName != nil {
		t.TaskName = *opt.TaskName
	}
	if opt.Date != nil {
		t.Date = *opt.Date
	}
	if opt.Time != nil {
		t.Time = *opt.Time
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Repeat != nil {
		t.Repeat = *opt.Repeat
	}
	r.tasks[t.ID] = t
	return t, nil
}

// ToggleTaskCompletion negates Completed under the write lock.
func (r *implRepository) ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleTaskCompletion"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return task.Task{}, nil
	}
	t.Completed = !t.Completed
	r.tasks[id] = t
	return t, nil
}

// DeleteTask removes id and reports whether it existed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
