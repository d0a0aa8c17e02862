package counter_test

import (
	"context"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	repo := counter.NewRepository(db)

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs(counter.EmployeeCode, int64(12), int64(12), int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(13))

	next, err := repo.GetNextValue(context.Background(), counter.EmployeeCode, 12)

	assert.NoError(t, err)
	assert.Equal(t, int64(13), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}
