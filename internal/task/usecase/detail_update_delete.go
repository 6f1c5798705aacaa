package usecase

import (
	"context"
	"strings"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.TaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Detail GetOneTask: %v", err)
		return task.TaskOutput{}, storeErr(err)
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// Update overwrites the supplied fields of an existing Task.
// Returns ErrNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.TaskOutput, error) {
	if err := uc.validateUpdate(input); err != nil {
		return task.TaskOutput{}, err
	}
	if input.IsEmpty() {
		return uc.Detail(ctx, input.ID)
	}

	opt := repo.UpdateTaskOptions{
		ID:       input.ID,
		Date:     input.Date,
		Time:     input.Time,
		Priority: input.Priority,
		Category: input.Category,
		Repeat:   input.Repeat,
	}
	if input.TaskName != nil {
		name := strings.TrimSpace(*input.TaskName)
		opt.TaskName = &name
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Update UpdateTask: %v", err)
		return task.TaskOutput{}, storeErr(err)
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// ToggleCompletion flips the completed flag. Returns ErrNotFound when not found.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) (task.TaskOutput, error) {
	t, err := uc.repo.ToggleTaskCompletion(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.ToggleCompletion ToggleTaskCompletion: %v", err)
		return task.TaskOutput{}, storeErr(err)
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// Delete permanently removes a Task by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Delete DeleteTask: %v", err)
		return storeErr(err)
	}
	if !deleted {
		return task.ErrNotFound
	}
	uc.l.Infof(ctx, "task/usecase.Delete: deleted task %s", id)
	return nil
}
