package usecase

import (
	"fmt"
	"strings"

	"todo-service/internal/task"
)

// validateCreate enforces every field constraint of a new task.
func (uc *implUseCase) validateCreate(input task.CreateTaskInput) error {
	if strings.TrimSpace(input.TaskName) == "" {
		return fmt.Errorf("%w: taskName is required", task.ErrValidation)
	}
	if strings.TrimSpace(input.Time) == "" {
		return fmt.Errorf("%w: time is required", task.ErrValidation)
	}
	if !input.Priority.IsValid() {
		return fmt.Errorf("%w: priority %q is not allowed", task.ErrValidation, input.Priority)
	}
	if !input.Category.IsValid() {
		return fmt.Errorf("%w: category %q is not allowed", task.ErrValidation, input.Category)
	}
	if !input.Repeat.IsValid() {
		return fmt.Errorf("%w: repeat %q is not allowed", task.ErrValidation, input.Repeat)
	}
	return nil
}

// validateUpdate only guards the non-empty name invariant. Enumeration fields
// are accepted as given on update.
func (uc *implUseCase) validateUpdate(input task.UpdateTaskInput) error {
	if input.TaskName != nil && strings.TrimSpace(*input.TaskName) == "" {
		return fmt.Errorf("%w: taskName cannot be empty", task.ErrValidation)
	}
	return nil
}

// storeErr wraps a repository failure as ErrStoreUnavailable, keeping the cause.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", task.ErrStoreUnavailable, err)
}
