package employee

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"
	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
)

// UniqueColumn names the employee columns checked for duplicates.
type UniqueColumn string

const (
	ColumnEmployeeID UniqueColumn = "employee_id"
	ColumnEmail      UniqueColumn = "email"
	ColumnPhone      UniqueColumn = "phone"
	ColumnUserID     UniqueColumn = "user_id"
)

const EmployeeCodePrefix = "EMP"

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindByUserID(ctx context.Context, userID uint) (*Employee, error)
	List(ctx context.Context, page, pageSize int) ([]Employee, int64, error)
	ExistsBy(ctx context.Context, column UniqueColumn, value any, excludeID uint) (bool, error)
	UserExists(ctx context.Context, userID uint) (bool, error)
	MaxEmployeeNumber(ctx context.Context) (int64, error)
	ManagerOptions(ctx context.Context) ([]ManagerOption, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, e *Employee) error
	ClearReferences(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit("User", "Manager").Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Manager").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uint) (*Employee, error) {
	var e Employee
	if err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns employees newest first with their manager and account.
func (r *repository) List(ctx context.Context, page, pageSize int) ([]Employee, int64, error) {
	var (
		rows  []Employee
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Manager").
		Order("created_at DESC").
		Order("id DESC").
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) ExistsBy(ctx context.Context, column UniqueColumn, value any, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where(string(column)+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// MaxEmployeeNumber returns the highest numeric EMP suffix, or 0 when none exists.
func (r *repository) MaxEmployeeNumber(ctx context.Context) (int64, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id LIKE ?", EmployeeCodePrefix+"%").
		Order("LENGTH(employee_id) DESC").
		Order("employee_id DESC").
		Limit(20).
		Pluck("employee_id", &codes).Error
	if err != nil {
		return 0, err
	}

	var highest int64
	for _, code := range codes {
		n, err := strconv.ParseInt(strings.TrimPrefix(code, EmployeeCodePrefix), 10, 64)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}

func (r *repository) ManagerOptions(ctx context.Context) ([]ManagerOption, error) {
	var opts []ManagerOption
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id, first_name, last_name").
		Where("position IN ?", []domain.Position{domain.PositionManager, domain.PositionChefSuperviseur}).
		Order("first_name ASC").
		Order("last_name ASC").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) DistinctDepartments(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct("department").
		Where("department IS NOT NULL AND department <> ''").
		Order("department ASC").
		Pluck("department", &names).Error
	return names, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit("User", "Manager", "CreatedAt").Save(e).Error
}

// ClearReferences nulls manager and supervisor links pointing at id.
func (r *repository) ClearReferences(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&Employee{}).Where("manager_id = ?", id).Update("manager_id", nil).Error; err != nil {
		return err
	}
	return db.Model(&Employee{}).Where("supervisor_id = ?", id).Update("supervisor_id", nil).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
