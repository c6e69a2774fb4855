package attendance

import (
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(staff.RoleAdmin, staff.RoleDeveloper))
	{
		attendances.GET("", h.ListByDate)
		attendances.POST("/:id/toggle", h.Toggle)
	}
}
