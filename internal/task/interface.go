package task

import "context"

// UseCase owns the task collection: CRUD, the completion toggle and progress stats.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (TaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (TaskOutput, error)
	ToggleCompletion(ctx context.Context, id string) (TaskOutput, error)
	Delete(ctx context.Context, id string) error
	Progress(ctx context.Context, input ListTasksInput) (ProgressOutput, error)
}
