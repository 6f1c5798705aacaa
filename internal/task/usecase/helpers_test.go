package usecase_test

import (
	"context"
	"errors"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errDown = errors.New("connection refused")

// downRepo fails every call the way an unreachable database would.
type downRepo struct{}

func (downRepo) Ping(ctx context.Context) error { return errDown }
func (downRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	return task.Task{}, repo.ErrFailedToInsert
}
func (downRepo) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	return task.Task{}, repo.ErrFailedToGet
}
func (downRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	return nil, repo.ErrFailedToList
}
func (downRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	return task.Task{}, repo.ErrFailedToUpdate
}
func (downRepo) ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error) {
	return task.Task{}, repo.ErrFailedToUpdate
}
func (downRepo) DeleteTask(ctx context.Context, id string) (bool, error) {
	return false, repo.ErrFailedToDelete
}

func strPtr(s string) *string { return &s }
