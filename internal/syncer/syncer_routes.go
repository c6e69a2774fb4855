package syncer

import (
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sync := r.Group("/admin/sync")
	sync.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(staff.RoleAdmin, staff.RoleDeveloper))
	{
		sync.POST("", h.Run)
		sync.GET("/status", h.Status)
	}
}
