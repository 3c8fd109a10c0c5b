package employeeerrors

import (
	"go-hr-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrAccountAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"Account is already linked to another employee",
		http.StatusConflict,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manager not found",
		http.StatusNotFound,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeConflict,
		"Employee cannot be their own manager",
		http.StatusConflict,
	)
	ErrIDGenerationExhausted = apperror.New(
		apperror.CodeServiceUnavailable,
		"Could not allocate an employee ID, please retry",
		http.StatusServiceUnavailable,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be active or inactive",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
