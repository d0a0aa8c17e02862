package report

import (
	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
)

// Viewer is the requester's employee profile as far as report visibility
// is concerned.
type Viewer struct {
	UserID            uint
	EmployeeID        uint
	Position          domain.Position
	Department        *string
	SupervisedUserIDs []uint
}

// Respondent is the employee profile behind a respondent account.
type Respondent struct {
	UserID       uint
	EmployeeID   uint
	SupervisorID *uint
	Department   *string
}

func sameDepartment(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CanView reports whether the viewer may see reports written by the given
// respondent account. r is nil when the account has no employee profile.
func (v Viewer) CanView(respondentUserID uint, r *Respondent) bool {
	switch v.Position {
	case domain.PositionManager:
		return true
	case domain.PositionChefSuperviseur:
		return r != nil && sameDepartment(r.Department, v.Department)
	case domain.PositionSuperviseur:
		if respondentUserID == v.UserID {
			return true
		}
		return r != nil && r.SupervisorID != nil && *r.SupervisorID == v.EmployeeID
	case domain.PositionEmployer:
		return respondentUserID == v.UserID
	default:
		return false
	}
}

// Scope limits a query on respondent rows to what the viewer may see.
// column is the respondent account column of the query.
func (v Viewer) Scope(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch v.Position {
		case domain.PositionManager:
			return db
		case domain.PositionChefSuperviseur:
			members := db.Session(&gorm.Session{NewDB: true}).
				Table("employees").
				Select("user_id").
				Where("user_id IS NOT NULL").
				Scopes(scope.NullableEq("department", v.Department))
			return db.Where(column+" IN (?)", members)
		case domain.PositionSuperviseur:
			ids := append([]uint{v.UserID}, v.SupervisedUserIDs...)
			return db.Where(column+" IN ?", ids)
		case domain.PositionEmployer:
			return db.Where(column+" = ?", v.UserID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// TeamScope is Scope without the viewer's own rows. A superviseur's team is
// their supervised accounts only.
func (v Viewer) TeamScope(column string) func(db *gorm.DB) *gorm.DB {
	if v.Position != domain.PositionSuperviseur {
		return v.Scope(column)
	}
	return func(db *gorm.DB) *gorm.DB {
		if len(v.SupervisedUserIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", v.SupervisedUserIDs)
	}
}
