package requesterrors

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
)

var (
	ErrInvalidLoginID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid login id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time, expected HH:MM or OFF",
		http.StatusBadRequest,
	)
	ErrNoDatesSelected = apperror.New(
		apperror.CodeInvalidInput,
		"no dates selected",
		http.StatusBadRequest,
	)
	ErrValidationRejected = apperror.New(
		apperror.CodeValidationRejected,
		"request contains redundant or invalid dates",
		http.StatusUnprocessableEntity,
	)
)
