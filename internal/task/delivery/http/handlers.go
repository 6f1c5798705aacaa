package http

import (
	"github.com/gin-gonic/gin"

	"todo-service/pkg/response"
)

// Create godoc
// @Summary     Add a task
// @Description Creates a new, incomplete task. taskName and time are required.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} singleResp
// @Failure     400  {object} response.Resp "Validation error"
// @Failure     503  {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/add [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, "Task added successfully", h.newSingleResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task, most recently created first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, h.processFilterReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, "", h.newListResp(output))
}

// Filter godoc
// @Summary     List tasks by category
// @Description Returns the tasks of one category. An empty category selects uncategorised tasks.
// @Tags        Tasks
// @Produce     json
// @Param       category query string false "Work, Personal, Wishlist or empty"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Unknown category"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/filter [GET]
func (h *handler) Filter(c *gin.Context) {
	h.List(c)
}

// Progress godoc
// @Summary     Task progress
// @Description Completed and remaining counts with one-decimal percentages.
// @Tags        Tasks
// @Produce     json
// @Param       category query string false "Restrict to one category"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Unknown category"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Progress(ctx, h.processFilterReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	message := ""
	if !output.Progress.HasData {
		message = "No data yet"
	}
	response.OK(c, message, h.newProgressResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, "", h.newSingleResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Overwrites the fields present in the body; absent fields are kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/{id}/update [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, "Task updated successfully", h.newSingleResp(output))
}

// ToggleCompletion godoc
// @Summary     Toggle completion
// @Description Marks an incomplete task complete, or a complete one incomplete.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/{id}/complete [PATCH]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleCompletion(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, "Task completion toggled", h.newSingleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, "Task deleted successfully", nil)
}
