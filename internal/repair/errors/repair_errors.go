package repairerrors

import (
	"net/http"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/apperror"
)

var ErrConfirmRequired = apperror.New(
	apperror.CodeConfirmRequired,
	"repair is destructive, call with confirm=true",
	http.StatusBadRequest,
)
