package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/KATBlackCoder/rapportflow/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var constraintErrors = map[string]error{
	"uq_employees_employee_id": employeeerrors.ErrEmployeeCodeTaken,
	"uq_employees_email":       employeeerrors.ErrEmailTaken,
	"uq_employees_phone":       employeeerrors.ErrPhoneTaken,
	"uq_employees_user_id":     employeeerrors.ErrUserAlreadyLinked,
}

// sqlite reports the column instead of the index name.
var sqliteColumnErrors = map[string]error{
	"employees.employee_id": employeeerrors.ErrEmployeeCodeTaken,
	"employees.email":       employeeerrors.ErrEmailTaken,
	"employees.phone":       employeeerrors.ErrPhoneTaken,
	"employees.user_id":     employeeerrors.ErrUserAlreadyLinked,
}

// MapRepositoryError translates persistence errors on the employees table.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return mapped
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for name, mapped := range constraintErrors {
			if strings.Contains(errMsg, name) {
				return mapped
			}
		}
	}
	if strings.Contains(errMsg, "unique constraint failed") {
		for column, mapped := range sqliteColumnErrors {
			if strings.Contains(errMsg, column) {
				return mapped
			}
		}
	}

	return err
}
