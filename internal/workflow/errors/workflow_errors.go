package workflowerrors

import (
	"go-hr-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"Workflow not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkflowID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid workflow ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Workflow status does not allow this transition",
		http.StatusConflict,
	)
)
