package http

import (
	"github.com/gin-gonic/gin"

	"todo-service/internal/task"
)

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processCreateReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processFilterReq reads the category query parameter. An absent parameter
// means no filter; a present but empty one selects the "none" sentinel.
func (h *handler) processFilterReq(c *gin.Context) task.ListTasksInput {
	category, ok := c.GetQuery("category")
	if !ok {
		return task.ListTasksInput{}
	}
	cat := task.Category(category)
	return task.ListTasksInput{Category: &cat}
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processUpdateReq: %v", err)
		return req, errInvalidBody
	}
	req.ID = c.Param("id")
	return req, nil
}
