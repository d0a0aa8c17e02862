package notification

import (
	"context"
	"strings"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]Notification, int64, error)
	FindByID(ctx context.Context, id uint) (*Notification, error)
	MarkRead(ctx context.Context, id uint, at time.Time) error
	SupervisorUserID(ctx context.Context, respondentUserID uint) (*uint, error)
	EmployeeName(ctx context.Context, userID uint) (string, error)
	QuestionnaireTitle(ctx context.Context, id uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUser returns unread notifications first, newest first within each group.
func (r *repository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]Notification, int64, error) {
	var (
		rows  []Notification
		total int64
	)
	base := r.db.WithContext(ctx).Model(&Notification{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("CASE WHEN read_at IS NULL THEN 0 ELSE 1 END").
		Order("created_at DESC").
		Order("id DESC").
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Notification, error) {
	var n Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) MarkRead(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at).Error
}

// SupervisorUserID resolves the account of the respondent's direct supervisor.
// nil means no supervisor or a supervisor without an account.
func (r *repository) SupervisorUserID(ctx context.Context, respondentUserID uint) (*uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Joins("JOIN employees AS s ON s.id = e.supervisor_id").
		Where("e.user_id = ?", respondentUserID).
		Where("s.user_id IS NOT NULL").
		Limit(1).
		Pluck("s.user_id", &ids).Error
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return &ids[0], nil
}

func (r *repository) EmployeeName(ctx context.Context, userID uint) (string, error) {
	var row struct {
		FirstName string
		LastName  string
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("first_name, last_name").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&row).Error
	return strings.TrimSpace(row.FirstName + " " + row.LastName), err
}

func (r *repository) QuestionnaireTitle(ctx context.Context, id uint) (string, error) {
	var titles []string
	err := r.db.WithContext(ctx).
		Table("questionnaires").
		Where("id = ?", id).
		Limit(1).
		Pluck("title", &titles).Error
	if err != nil || len(titles) == 0 {
		return "", err
	}
	return titles[0], nil
}
