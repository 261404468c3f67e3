package historyerrors

import (
	"net/http"

	"github.com/JaSamMarko/back-office/internal/shared/apperror"
)

var (
	ErrInvalidRecordType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown record type",
		http.StatusBadRequest,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid record ID",
		http.StatusBadRequest,
	)
	ErrInvalidChangeType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown change type",
		http.StatusBadRequest,
	)
)
