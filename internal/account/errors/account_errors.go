package accounterrors

import (
	"go-hr-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Related account not found",
		http.StatusNotFound,
	)
	ErrAccountReferenceRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Either account_id or email is required",
		http.StatusBadRequest,
	)
)
