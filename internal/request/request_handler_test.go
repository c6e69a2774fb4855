package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/request"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	requesterrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/request/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	validateFn   func(ctx context.Context, req request.ValidateShiftRequest) (request.Evaluation, error)
	submitFn     func(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error)
	listShiftsFn func(ctx context.Context, loginID, from, to string) ([]request.ShiftResponse, error)
}

func (f *fakeService) Validate(ctx context.Context, req request.ValidateShiftRequest) (request.Evaluation, error) {
	return f.validateFn(ctx, req)
}
func (f *fakeService) Submit(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error) {
	return f.submitFn(ctx, req)
}
func (f *fakeService) ListShifts(ctx context.Context, loginID, from, to string) ([]request.ShiftResponse, error) {
	return f.listShiftsFn(ctx, loginID, from, to)
}

const submitBody = `{"dates":["2030-01-15"],"proposals":{"2030-01-15":{"start":"18:00","end":"22:00"}}}`

// asIdentity mimics what the auth middleware leaves in the context.
func asIdentity(c *gin.Context, loginID, role string) {
	c.Set("login_id", loginID)
	c.Set("role", role)
}

func TestHandler_ValidateBlockedIsStill200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		validateFn: func(ctx context.Context, req request.ValidateShiftRequest) (request.Evaluation, error) {
			return request.Evaluation{
				CanSubmit: false,
				Checks:    []request.DateCheck{{Date: "2030-01-15", Redundant: true}},
			}, nil
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	asIdentity(c, "00600037", staff.RoleCast)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests/validate", strings.NewReader(submitBody))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"can_submit":false`)
}

func TestHandler_SubmitSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error) {
			assert.Equal(t, "00600037", req.LoginID)
			return request.SubmitResponse{Submitted: 1, Total: 1}, nil
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	asIdentity(c, "00600037", staff.RoleCast)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(submitBody))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"submitted":1`)
}

func TestHandler_SubmitCastCannotActAsAnotherStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error) {
			assert.Equal(t, "00600037", req.LoginID)
			return request.SubmitResponse{Submitted: 1, Total: 1}, nil
		},
	}
	h := request.NewHandler(svc)

	body := `{"login_id":"00999999","dates":["2030-01-15"],"proposals":{"2030-01-15":{"start":"18:00","end":"22:00"}}}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	asIdentity(c, "00600037", staff.RoleCast)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SubmitAdminMaySpecifyLoginID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error) {
			assert.Equal(t, "00999999", req.LoginID)
			return request.SubmitResponse{Submitted: 1, Total: 1}, nil
		},
	}
	h := request.NewHandler(svc)

	body := `{"login_id":"00999999","dates":["2030-01-15"],"proposals":{"2030-01-15":{"start":"18:00","end":"22:00"}}}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	asIdentity(c, "00000001", staff.RoleAdmin)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SubmitRejectedIs422WithChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, req request.SubmitShiftRequest) (request.SubmitResponse, error) {
			return request.SubmitResponse{
				Total:  1,
				Checks: []request.DateCheck{{Date: "2030-01-15", TimeInverted: true}},
			}, requesterrors.ErrValidationRejected
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	asIdentity(c, "00600037", staff.RoleCast)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(submitBody))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REJECTED")
	assert.Contains(t, w.Body.String(), `"time_inverted":true`)
}

func TestHandler_SubmitMissingFieldsIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := request.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"dates":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
