package http

import (
	"github.com/gin-gonic/gin"

	"todo-service/internal/task"
	"todo-service/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Filter(c *gin.Context)
	Progress(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	ToggleCompletion(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
