package department

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	DistinctNames(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// DistinctNames lists the non-empty department names of the employees,
// sorted.
func (r *repository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Distinct("department").
		Where("department IS NOT NULL AND department <> ''").
		Order("department").
		Pluck("department", &names).Error
	return names, err
}
