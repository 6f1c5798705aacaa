package usecase

import (
	"context"
	"strings"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// Create validates and persists a new, incomplete Task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.TaskOutput, error) {
	if err := uc.validateCreate(input); err != nil {
		return task.TaskOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		TaskName:  strings.TrimSpace(input.TaskName),
		Date:      input.Date,
		Time:      input.Time,
		Priority:  input.Priority,
		Category:  input.Category,
		Repeat:    input.Repeat,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Create CreateTask: %v", err)
		return task.TaskOutput{}, storeErr(err)
	}

	uc.l.Infof(ctx, "task/usecase.Create: created task %s", t.ID)
	return task.TaskOutput{Task: t}, nil
}
