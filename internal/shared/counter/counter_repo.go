package counter

import (
	"context"
	"database/sql"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"

	"gorm.io/gorm"
)

const EmployeeCode = "employee_code"

// Counter is one named monotonic sequence.
type Counter struct {
	CounterType string `gorm:"primaryKey;type:varchar(50)"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (Counter) TableName() string { return "counters" }

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// GetNextValue increments the sequence and returns the new value. floor
	// is the highest value already in use elsewhere; the result is always
	// greater than it.
	GetNextValue(ctx context.Context, counterType string, floor int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormTx(r.db, tx)}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string, floor int64) (int64, error) {
	var nextValue int64

	// single statement upsert; the row lock serializes concurrent callers
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, ? + 1, CURRENT_TIMESTAMP)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = CASE WHEN counters.last_value > ? THEN counters.last_value ELSE ? END + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, counterType, floor, floor, floor).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
