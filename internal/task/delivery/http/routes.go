package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The paths match the ones the mobile client already calls.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/add", h.Create)
	rg.GET("", h.List)
	rg.GET("/filter", h.Filter)
	rg.GET("/progress", h.Progress)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id/update", h.Update)
	rg.PATCH("/:id/complete", h.ToggleCompletion)
	rg.DELETE("/:id", h.Delete)
}
