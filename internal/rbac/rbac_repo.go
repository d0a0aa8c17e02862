package rbac

import (
	"context"

	"github.com/KATBlackCoder/rapportflow/internal/domain"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// FindPositionByUserID returns nil when the user has no employee profile.
	FindPositionByUserID(ctx context.Context, userID uint) (*domain.Position, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindPositionByUserID(ctx context.Context, userID uint) (*domain.Position, error) {
	var positions []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("user_id = ?", userID).
		Limit(1).
		Pluck("position", &positions).Error
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, nil
	}

	p := domain.Position(positions[0])
	return &p, nil
}
