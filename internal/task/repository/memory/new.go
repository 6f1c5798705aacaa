package memory

import (
	"context"
	"fmt"
	"sync"

	"todo-service/internal/task"
	"todo-service/internal/task/repository"
	"todo-service/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]task.Task
	order []string // insertion order, the natural order of this backend
	l     log.Logger
}

// New creates an in-process Repository. State lives only as long as the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		tasks: make(map[string]task.Task),
		l:     l,
	}
}

// Ping always succeeds unless ctx is already done.
func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
