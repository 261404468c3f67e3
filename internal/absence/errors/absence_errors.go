package absenceerrors

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must be before end date.",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAbsenceType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown absence type",
		http.StatusBadRequest,
	)
	ErrInvalidAbsenceID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid absence id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not exist",
		http.StatusBadRequest,
	)
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence record not found",
		http.StatusNotFound,
	)
)
