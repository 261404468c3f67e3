package accounterrors

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Account with the same username already exists",
		http.StatusConflict,
	)
)
