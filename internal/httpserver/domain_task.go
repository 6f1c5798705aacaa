package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "todo-service/internal/task/delivery/http"
	taskUC "todo-service/internal/task/usecase"
)

// setupTaskDomain wires the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := taskUC.New(srv.taskRepo, srv.l)

	// 2. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/tasks/...
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
