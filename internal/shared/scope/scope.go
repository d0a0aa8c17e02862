// Package scope holds reusable gorm scopes for filtered listings.
package scope

import (
	"time"

	"gorm.io/gorm"
)

// Eq filters column = *v, skipping the clause when v is nil.
func Eq[T any](column string, v *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(column+" = ?", *v)
	}
}

// NullableEq matches an optional column where null equals null.
func NullableEq(column string, v *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", *v)
	}
}

// DateRange keeps rows whose column falls on or between the two calendar
// days. Either bound may be nil.
func DateRange(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", startOfDay(*from))
		}
		if to != nil {
			db = db.Where(column+" < ?", startOfDay(*to).AddDate(0, 0, 1))
		}
		return db
	}
}

// Since keeps rows whose column is at or after t.
func Since(column string, t time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", t)
	}
}

func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
