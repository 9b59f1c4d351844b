package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.listWithDetails)
	rg.GET("/all", h.listAllAdmin)
	rg.GET("/manager", h.listForManager)
	rg.GET("/check/:code", h.checkExists)
	rg.GET("/count/:manager", h.countNonCompleted)
	rg.GET("/:code", h.read)
	rg.GET("/:code/manager", h.readManager)
	rg.PUT("/:code", h.update)
	rg.PUT("/:code/complete", h.complete)
	rg.DELETE("/:code", h.delete)
}
