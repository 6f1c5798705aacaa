package usecase

import (
	"time"

	"todo-service/internal/task/repository"
	pkgLog "todo-service/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
	now  func() time.Time
}

// Option customises the use case at construction time.
type Option func(*implUseCase)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
