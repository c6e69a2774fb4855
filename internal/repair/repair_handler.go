package repair

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/response"

	repairerrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/repair/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Run(c *gin.Context) {
	if c.Query("confirm") != "true" {
		httpErr := apperror.ToHTTP(repairerrors.ErrConfirmRequired)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Run(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res)
}
