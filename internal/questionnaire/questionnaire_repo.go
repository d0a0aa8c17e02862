package questionnaire

import (
	"context"
	"database/sql"
	"strings"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"
	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=questionnaire_repo.go -destination=mock/questionnaire_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]Questionnaire, int64, error)
	FindByID(ctx context.Context, id uint) (*Questionnaire, error)
	Create(ctx context.Context, q *Questionnaire) error
	UpdateFields(ctx context.Context, q *Questionnaire) error
	Delete(ctx context.Context, id uint) error
	CreateQuestion(ctx context.Context, q *Question) error
	LinkConditional(ctx context.Context, questionID, conditionalID uint) error
	DeleteQuestions(ctx context.Context, questionnaireID uint) error
	PublishedOptions(ctx context.Context) ([]PublishedOption, error)
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

func byOrder(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).Order("id")
}

func (r *repository) List(ctx context.Context, filter ListFilter, page, pageSize int) ([]Questionnaire, int64, error) {
	var rows []Questionnaire
	var total int64

	query := r.db.WithContext(ctx).Model(&Questionnaire{}).Scopes(scope.Eq("status", filter.Status))
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(*filter.Search))+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Creator").
		Preload("Questions", byOrder).
		Order("created_at DESC").Order("id DESC").
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Questionnaire, error) {
	var q Questionnaire
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Questions", byOrder).
		Preload("Questions.ConditionalQuestion").
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) Create(ctx context.Context, q *Questionnaire) error {
	return r.db.WithContext(ctx).Omit("Creator", "Questions").Create(q).Error
}

func (r *repository) UpdateFields(ctx context.Context, q *Questionnaire) error {
	res := r.db.WithContext(ctx).
		Model(&Questionnaire{ID: q.ID}).
		Select("title", "description", "status", "target_type", "updated_at").
		Updates(q)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the questionnaire with its questions and responses. Links
// from other questions into this questionnaire are nulled first.
func (r *repository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := r.detachQuestions(db, id); err != nil {
		return err
	}
	res := db.Delete(&Questionnaire{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateQuestion(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Omit("ConditionalQuestion").Create(q).Error
}

func (r *repository) LinkConditional(ctx context.Context, questionID, conditionalID uint) error {
	return r.db.WithContext(ctx).
		Model(&Question{}).
		Where("id = ?", questionID).
		Update("conditional_question_id", conditionalID).Error
}

// DeleteQuestions drops every question of the questionnaire together with
// the responses given to them.
func (r *repository) DeleteQuestions(ctx context.Context, questionnaireID uint) error {
	return r.detachQuestions(r.db.WithContext(ctx), questionnaireID)
}

func (r *repository) detachQuestions(db *gorm.DB, questionnaireID uint) error {
	owned := db.Model(&Question{}).Select("id").Where("questionnaire_id = ?", questionnaireID)

	if err := db.Exec("DELETE FROM questionnaire_responses WHERE questionnaire_id = ? OR question_id IN (?)", questionnaireID, owned).Error; err != nil {
		return err
	}
	if err := db.Model(&Question{}).
		Where("conditional_question_id IN (?)", owned).
		Update("conditional_question_id", nil).Error; err != nil {
		return err
	}
	return db.Where("questionnaire_id = ?", questionnaireID).Delete(&Question{}).Error
}

func (r *repository) PublishedOptions(ctx context.Context) ([]PublishedOption, error) {
	var opts []PublishedOption
	err := r.db.WithContext(ctx).
		Model(&Questionnaire{}).
		Select("id", "title").
		Where("status = ?", domain.QuestionnairePublished).
		Order("title").
		Scan(&opts).Error
	return opts, err
}
