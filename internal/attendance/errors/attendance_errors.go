package attendanceerrors

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	)
	ErrNotToggleable = apperror.New(
		apperror.CodeInvalidState,
		"only official or absent shifts can be toggled",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
