package apperror

import "net/http"

var (
	ErrForbidden = New(
		CodeForbidden,
		"you do not have permission to perform this action",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"an unexpected error occurred",
		http.StatusInternalServerError,
	)
)
