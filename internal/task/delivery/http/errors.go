package http

import (
	"errors"
	"net/http"

	"todo-service/internal/task"
	pkgErrors "todo-service/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Task store unavailable")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
}
