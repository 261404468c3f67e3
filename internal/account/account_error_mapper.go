package account

import (
	"errors"
	"strings"

	accounterrors "github.com/JaSamMarko/back-office/internal/account/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrDuplicateUsername = accounterrors.ErrAccountAlreadyExists

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accounterrors.ErrAccountNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return accounterrors.ErrAccountAlreadyExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return accounterrors.ErrAccountAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint failed") {
		return accounterrors.ErrAccountAlreadyExists
	}

	return err
}
