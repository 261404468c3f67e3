package employeeerrors

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPersonalIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same personal ID already exists",
		http.StatusConflict,
	)
	ErrAccountAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"Account is already linked to another employee",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidKPI = apperror.New(
		apperror.CodeInvalidInput,
		"KPI must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrInvalidEducation = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown education level",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)
	ErrAccountNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Account does not exist",
		http.StatusBadRequest,
	)
	ErrMentorNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Mentor does not exist",
		http.StatusBadRequest,
	)
)
