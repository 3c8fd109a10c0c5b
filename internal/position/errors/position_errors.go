package positionerrors

import (
	"go-hr-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrPositionNotAvailable = apperror.New(
		apperror.CodeInvalidState,
		"Position is not available for assignment",
		http.StatusConflict,
	)
	ErrPresidentAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"President already assigned",
		http.StatusConflict,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
)
