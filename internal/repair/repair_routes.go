package repair

import (
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	admin := r.Group("/admin/repair")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(staff.RoleAdmin, staff.RoleDeveloper))
	{
		admin.POST("", h.Run)
	}
}
