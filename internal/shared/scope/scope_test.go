package scope_test

import (
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID uint
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func TestScopes(t *testing.T) {
	db := dryRun(t)

	t.Run("eq skips nil", func(t *testing.T) {
		var rows []row
		stmt := db.Table("questionnaire_responses").Scopes(scope.Eq[uint]("questionnaire_id", nil)).Find(&rows).Statement
		assert.NotContains(t, stmt.SQL.String(), "questionnaire_id")
	})

	t.Run("eq binds value", func(t *testing.T) {
		var rows []row
		id := uint(5)
		stmt := db.Table("questionnaire_responses").Scopes(scope.Eq("questionnaire_id", &id)).Find(&rows).Statement
		assert.Contains(t, stmt.SQL.String(), "questionnaire_id = $1")
		assert.Equal(t, []any{uint(5)}, stmt.Vars)
	})

	t.Run("nullable eq matches null", func(t *testing.T) {
		var rows []row
		stmt := db.Table("employees").Scopes(scope.NullableEq("department", nil)).Find(&rows).Statement
		assert.Contains(t, stmt.SQL.String(), "department IS NULL")
	})

	t.Run("date range is inclusive of the last day", func(t *testing.T) {
		var rows []row
		from := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)
		stmt := db.Table("questionnaire_responses").Scopes(scope.DateRange("submitted_at", &from, &to)).Find(&rows).Statement

		assert.Contains(t, stmt.SQL.String(), "submitted_at >= $1")
		assert.Contains(t, stmt.SQL.String(), "submitted_at < $2")
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), stmt.Vars[0])
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), stmt.Vars[1])
	})

	t.Run("paginate", func(t *testing.T) {
		var rows []row
		stmt := db.Table("questionnaires").Scopes(scope.Paginate(3, 15)).Find(&rows).Statement
		assert.Contains(t, stmt.SQL.String(), "LIMIT")
		assert.Contains(t, stmt.SQL.String(), "OFFSET")
	})
}
