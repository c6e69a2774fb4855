package request

import (
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("/validate", h.Validate)
		requests.POST("", h.Submit)
	}

	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", h.ListShifts)
	}
}
