package usecase

import (
	"context"
	"fmt"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// List returns every task newest first, or the tasks of one category in the
// store's natural order when a category filter is given.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.list(ctx, input)
	if err != nil {
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}

// Progress computes completion statistics over the same snapshot List would return.
func (uc *implUseCase) Progress(ctx context.Context, input task.ListTasksInput) (task.ProgressOutput, error) {
	tasks, err := uc.list(ctx, input)
	if err != nil {
		return task.ProgressOutput{}, err
	}
	return task.ProgressOutput{Progress: task.ComputeProgress(tasks)}, nil
}

func (uc *implUseCase) list(ctx context.Context, input task.ListTasksInput) ([]task.Task, error) {
	if input.Category != nil && !input.Category.IsValid() {
		return nil, fmt.Errorf("%w: category %q is not allowed", task.ErrValidation, *input.Category)
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Category:        input.Category,
		SortNewestFirst: input.Category == nil,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.List ListTasks: %v", err)
		return nil, storeErr(err)
	}
	return tasks, nil
}
