package syncer

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("syncer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer.handler")
	}
	return &Handler{service: service, logger: l}
}

// Run triggers a merge over the forward window. Safe to invoke repeatedly;
// re-running against unchanged source data changes nothing.
func (h *Handler) Run(c *gin.Context) {
	summary, err := h.service.Run(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("sync run failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) Status(c *gin.Context) {
	at, err := h.service.LastSyncAt(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("last sync lookup failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"last_sync_at": at})
}
