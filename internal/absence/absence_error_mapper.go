package absence

import (
	"errors"
	"strings"

	absenceerrors "github.com/JaSamMarko/back-office/internal/absence/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceNotFound
	}

	// 23503: the employee vanished between the existence check and insert.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return absenceerrors.ErrEmployeeNotFound
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed") {
		return absenceerrors.ErrEmployeeNotFound
	}

	return err
}
