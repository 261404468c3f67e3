package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/JaSamMarko/back-office/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintPersonalID = "uq_employees_personal_id"
	constraintAccount    = "uq_employees_account"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintPersonalID:
			return employeeerrors.ErrPersonalIDAlreadyExists
		case constraintAccount:
			return employeeerrors.ErrAccountAlreadyLinked
		}
	}

	// sqlite reports the column rather than the index name.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, constraintPersonalID) || strings.Contains(errMsg, "unique constraint failed: employees.personal_id") {
		return employeeerrors.ErrPersonalIDAlreadyExists
	}
	if strings.Contains(errMsg, constraintAccount) || strings.Contains(errMsg, "unique constraint failed: employees.account_id") {
		return employeeerrors.ErrAccountAlreadyLinked
	}

	return err
}
