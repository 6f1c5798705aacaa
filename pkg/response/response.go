package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-service/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(message string, data any) Resp {
	if message == "" {
		message = MessageSuccess
	}
	return Resp{
		Success:   true,
		ErrorCode: 0,
		Message:   message,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, NewOKResp(message, data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, NewOKResp(message, data))
}

// Error renders err. An *errors.HTTPError keeps its status code and message;
// anything else is reported as 400 with the raw error text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			Success:   false,
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		Success:   false,
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success:   false,
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success:   false,
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Rate limit exceeded",
	})
}
