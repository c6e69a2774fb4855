package staff

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory Directory
	logger    *zap.Logger
}

func NewHandler(directory Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("staff.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.handler")
	}
	return &Handler{directory: directory, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	shopID := c.DefaultQuery("shop", "all")

	resp, err := h.directory.List(c.Request.Context(), shopID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list staff failed", zap.String("shop", shopID), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
