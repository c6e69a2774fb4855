package staff

import (
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	members := r.Group("/staff")
	members.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(RoleAdmin, RoleDeveloper))
	{
		members.GET("", h.List)
	}
}
