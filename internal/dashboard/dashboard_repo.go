package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/report"
	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
)

const (
	byReport     = "r.questionnaire_id, r.row_identifier"
	byRespondent = "r.questionnaire_id, r.respondent_id, r.row_identifier"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountOwnReports(ctx context.Context, userID uint) (int64, error)
	CountPendingCorrections(ctx context.Context, viewer report.Viewer) (int64, error)
	CountTeamReports(ctx context.Context, viewer report.Viewer, since time.Time) (int64, error)
	CountReports(ctx context.Context, viewer report.Viewer) (int64, error)
	CountEmployees(ctx context.Context, filter EmployeeFilter) (int64, error)
	CountPublishedQuestionnaires(ctx context.Context) (int64, error)
	RecentReports(ctx context.Context, viewer report.Viewer, limit int) ([]RecentReport, error)
	PendingCorrections(ctx context.Context, viewer report.Viewer, limit int) ([]PendingCorrection, error)
	LastReport(ctx context.Context, userID uint) (*LastReport, error)
	CountAvailableQuestionnaires(ctx context.Context, userID uint, since time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) responses(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("questionnaire_responses AS r")
}

// countGroups counts the distinct groups of a filtered response query.
func (r *repository) countGroups(ctx context.Context, groupBy string, filtered *gorm.DB) (int64, error) {
	var total int64
	sub := filtered.Select(groupBy).Group(groupBy)
	err := r.db.WithContext(ctx).Table("(?) AS g", sub).Count(&total).Error
	return total, err
}

func (r *repository) CountOwnReports(ctx context.Context, userID uint) (int64, error) {
	return r.countGroups(ctx, byReport, r.responses(ctx).
		Where("r.respondent_id = ?", userID).
		Where("r.submitted_at IS NOT NULL"),
	)
}

func (r *repository) CountPendingCorrections(ctx context.Context, viewer report.Viewer) (int64, error) {
	return r.countGroups(ctx, byReport, r.responses(ctx).
		Where("r.status = ?", domain.ResponseReturnedForCorrection).
		Scopes(viewer.Scope("r.respondent_id")),
	)
}

func (r *repository) CountTeamReports(ctx context.Context, viewer report.Viewer, since time.Time) (int64, error) {
	return r.countGroups(ctx, byRespondent, r.responses(ctx).
		Scopes(viewer.TeamScope("r.respondent_id"), scope.Since("r.submitted_at", since)),
	)
}

func (r *repository) CountReports(ctx context.Context, viewer report.Viewer) (int64, error) {
	return r.countGroups(ctx, byRespondent, r.responses(ctx).
		Where("r.submitted_at IS NOT NULL").
		Scopes(viewer.Scope("r.respondent_id")),
	)
}

func (r *repository) CountEmployees(ctx context.Context, filter EmployeeFilter) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Table("employees").Scopes(scope.Eq("position", filter.Position))
	if !filter.AllDepartments {
		query = query.Scopes(scope.NullableEq("department", filter.Department))
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *repository) CountPublishedQuestionnaires(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("questionnaires").
		Where("status = ?", domain.QuestionnairePublished).
		Count(&total).Error
	return total, err
}

// RecentReports returns up to limit newest submissions from the viewer's
// team, one per logical report and submission time.
func (r *repository) RecentReports(ctx context.Context, viewer report.Viewer, limit int) ([]RecentReport, error) {
	var rows []RecentReport
	err := r.responses(ctx).
		Select(`r.id AS response_id, r.questionnaire_id, q.title AS questionnaire_title,
			r.row_identifier, r.respondent_id, u.name AS respondent_name, r.submitted_at`).
		Joins("JOIN questionnaires q ON q.id = r.questionnaire_id").
		Joins("LEFT JOIN users u ON u.id = r.respondent_id").
		Where("r.submitted_at IS NOT NULL").
		Scopes(viewer.TeamScope("r.respondent_id")).
		Order("r.submitted_at DESC").Order("r.id DESC").
		Limit(limit * 5).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return firstPerKey(rows, recentReportKey, limit), nil
}

// PendingCorrections returns up to limit returned reports, latest review
// first, picked from the 50 most recently reviewed rows.
func (r *repository) PendingCorrections(ctx context.Context, viewer report.Viewer, limit int) ([]PendingCorrection, error) {
	var rows []PendingCorrection
	err := r.responses(ctx).
		Select("r.id AS response_id, r.questionnaire_id, q.title AS questionnaire_title, r.row_identifier, r.reviewed_at").
		Joins("JOIN questionnaires q ON q.id = r.questionnaire_id").
		Where("r.status = ?", domain.ResponseReturnedForCorrection).
		Scopes(viewer.Scope("r.respondent_id")).
		Order("r.reviewed_at DESC").Order("r.id DESC").
		Limit(50).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return firstPerKey(rows, pendingCorrectionKey, limit), nil
}

func (r *repository) LastReport(ctx context.Context, userID uint) (*LastReport, error) {
	var last LastReport
	err := r.responses(ctx).
		Select("q.title AS questionnaire_title, r.submitted_at").
		Joins("JOIN questionnaires q ON q.id = r.questionnaire_id").
		Where("r.respondent_id = ?", userID).
		Where("r.submitted_at IS NOT NULL").
		Order("r.submitted_at DESC").Order("r.id DESC").
		Take(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &last, nil
}

func (r *repository) CountAvailableQuestionnaires(ctx context.Context, userID uint, since time.Time) (int64, error) {
	answered := r.db.Session(&gorm.Session{NewDB: true}).
		Table("questionnaire_responses").
		Select("DISTINCT questionnaire_id").
		Where("respondent_id = ?", userID).
		Scopes(scope.Since("submitted_at", since))

	var total int64
	err := r.db.WithContext(ctx).
		Table("questionnaires").
		Where("status = ?", domain.QuestionnairePublished).
		Where("target_type = ?", domain.TargetEmployees).
		Where("id NOT IN (?)", answered).
		Count(&total).Error
	return total, err
}
