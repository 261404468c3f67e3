package departmenterrors

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same code already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
