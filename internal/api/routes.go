package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/render", h.render)
		api.GET("/template-key", templateKey)
		api.GET("/qr", qrHandler)
	}
}
