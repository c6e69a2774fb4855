package request

import (
	"errors"
	"net/http"

	requesterrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/request/errors"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/response"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("shift request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// resolveLoginID picks the identity a request acts on. Cast members always
// act as themselves; admins and developers may name someone else.
func resolveLoginID(c *gin.Context, requested string) string {
	role := c.GetString("role")
	if requested != "" && (role == staff.RoleAdmin || role == staff.RoleDeveloper) {
		return requested
	}
	return c.GetString("login_id")
}

// Validate runs the validator without side effects; the staff UI calls it on
// every edit. A blocked result is data, not an error.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}
	req.LoginID = resolveLoginID(c, req.LoginID)

	eval, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, eval)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}
	req.LoginID = resolveLoginID(c, req.LoginID)

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, requesterrors.ErrValidationRejected) {
			response.Error(c, http.StatusUnprocessableEntity, apperror.CodeValidationRejected,
				requesterrors.ErrValidationRejected.Message, resp.Checks)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ListShifts(c *gin.Context) {
	loginID := resolveLoginID(c, c.Query("login_id"))
	from := c.Query("from")
	to := c.Query("to")

	resp, err := h.service.ListShifts(c.Request.Context(), loginID, from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
