package report

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"
	"github.com/KATBlackCoder/rapportflow/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Viewer(ctx context.Context, userID uint) (*Viewer, error)
	Respondent(ctx context.Context, userID uint) (*Respondent, error)
	AvailableQuestionnaires(ctx context.Context, targets []domain.TargetType, page, pageSize int) ([]questionnaire.Questionnaire, int64, error)
	CreateResponses(ctx context.Context, rows []Response) error
	FindByID(ctx context.Context, id uint) (*Response, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Response, error)
	LogicalReport(ctx context.Context, key ReportKey) ([]Response, error)
	DeleteLogicalReport(ctx context.Context, key ReportKey) error
	MarkReturned(ctx context.Context, ids []uint, reviewerID uint, reason string, at time.Time) error
	ListMine(ctx context.Context, userID uint, filter Filter, page, pageSize int) ([]ReportGroup, int64, error)
	ListCorrections(ctx context.Context, userID uint, page, pageSize int) ([]ReportGroup, int64, error)
	ListAnalysis(ctx context.Context, viewer Viewer, filter Filter, page, pageSize int) ([]ReportGroup, int64, error)
	Export(ctx context.Context, viewer Viewer, filter Filter) ([]ExportRow, error)
	RespondentOptions(ctx context.Context, viewer Viewer) ([]RespondentOption, error)
	QuestionnaireTitle(ctx context.Context, id uint) (string, error)
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

type employeeRow struct {
	ID           uint
	UserID       uint
	Position     domain.Position
	Department   *string
	SupervisorID *uint
}

func (r *repository) employeeByUser(ctx context.Context, userID uint) (*employeeRow, error) {
	var row employeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "user_id", "position", "department", "supervisor_id").
		Where("user_id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Viewer loads the requester's employee profile. It returns nil without an
// error when the account has no employee.
func (r *repository) Viewer(ctx context.Context, userID uint) (*Viewer, error) {
	row, err := r.employeeByUser(ctx, userID)
	if err != nil || row == nil {
		return nil, err
	}

	v := &Viewer{
		UserID:     userID,
		EmployeeID: row.ID,
		Position:   row.Position,
		Department: row.Department,
	}
	if row.Position == domain.PositionSuperviseur {
		err := r.db.WithContext(ctx).
			Table("employees").
			Where("supervisor_id = ? AND user_id IS NOT NULL", row.ID).
			Order("user_id").
			Pluck("user_id", &v.SupervisedUserIDs).Error
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (r *repository) Respondent(ctx context.Context, userID uint) (*Respondent, error) {
	row, err := r.employeeByUser(ctx, userID)
	if err != nil || row == nil {
		return nil, err
	}
	return &Respondent{
		UserID:       userID,
		EmployeeID:   row.ID,
		SupervisorID: row.SupervisorID,
		Department:   row.Department,
	}, nil
}

func (r *repository) AvailableQuestionnaires(ctx context.Context, targets []domain.TargetType, page, pageSize int) ([]questionnaire.Questionnaire, int64, error) {
	var rows []questionnaire.Questionnaire
	var total int64

	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&questionnaire.Questionnaire{}).
			Where("status = ?", domain.QuestionnairePublished).
			Where("target_type IN ?", targets)
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query().
		Preload("Creator").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
		}).
		Order("created_at DESC").Order("id DESC").
		Scopes(scope.Paginate(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) CreateResponses(ctx context.Context, rows []Response) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Question").Create(&rows).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Response, error) {
	var row Response
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uint) ([]Response, error) {
	var rows []Response
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error
	return rows, err
}

func keyScope(key ReportKey, prefix string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where(prefix+"questionnaire_id = ?", key.QuestionnaireID).
			Where(prefix+"respondent_id = ?", key.RespondentID).
			Scopes(scope.NullableEq(prefix+"row_identifier", key.RowIdentifier))
	}
}

// LogicalReport returns every row of the report in question order.
func (r *repository) LogicalReport(ctx context.Context, key ReportKey) ([]Response, error) {
	var rows []Response
	err := r.db.WithContext(ctx).
		Preload("Question").
		Joins("LEFT JOIN questions qs ON qs.id = questionnaire_responses.question_id").
		Scopes(keyScope(key, "questionnaire_responses.")).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "qs", Name: "order"}}).
		Order("questionnaire_responses.id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteLogicalReport(ctx context.Context, key ReportKey) error {
	return r.db.WithContext(ctx).Scopes(keyScope(key, "")).Delete(&Response{}).Error
}

// MarkReturned stamps every listed row with one status, reviewer, time and
// reason in a single statement.
func (r *repository) MarkReturned(ctx context.Context, ids []uint, reviewerID uint, reason string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Response{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":            domain.ResponseReturnedForCorrection,
			"reviewed_by":       reviewerID,
			"reviewed_at":       at,
			"correction_reason": reason,
			"updated_at":        at,
		}).Error
}

func filterScope(f Filter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			scope.Eq("r.questionnaire_id", f.QuestionnaireID),
			scope.Eq("r.respondent_id", f.RespondentID),
			scope.Eq("r.status", f.Status),
			scope.DateRange("r.submitted_at", f.DateFrom, f.DateTo),
		)
	}
}

// groupedPage counts and pages a grouped listing. build must return a fresh
// query on every call.
func groupedPage(build func() *gorm.DB, groupBy, order string, page, pageSize int) ([]ReportGroup, int64, error) {
	var total int64
	sub := build().Select(groupBy).Group(groupBy)
	if err := build().Session(&gorm.Session{NewDB: true}).Table("(?) AS g", sub).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ReportGroup
	err := build().
		Select(groupBy + ", MAX(q.title) AS questionnaire_title, MIN(r.id) AS response_id, COUNT(*) AS answers_count").
		Joins("JOIN questionnaires q ON q.id = r.questionnaire_id").
		Group(groupBy).
		Order(order).
		Scopes(scope.Paginate(page, pageSize)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) ListMine(ctx context.Context, userID uint, filter Filter, page, pageSize int) ([]ReportGroup, int64, error) {
	build := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("questionnaire_responses AS r").
			Where("r.respondent_id = ?", userID).
			Scopes(filterScope(filter))
	}
	return groupedPage(build,
		"r.questionnaire_id, r.row_identifier, r.status, r.submitted_at, r.correction_reason",
		"r.submitted_at DESC",
		page, pageSize,
	)
}

func (r *repository) ListCorrections(ctx context.Context, userID uint, page, pageSize int) ([]ReportGroup, int64, error) {
	build := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("questionnaire_responses AS r").
			Where("r.respondent_id = ?", userID).
			Where("r.status = ?", domain.ResponseReturnedForCorrection)
	}
	return groupedPage(build,
		"r.questionnaire_id, r.row_identifier, r.status, r.submitted_at, r.correction_reason, r.reviewed_at",
		"r.reviewed_at DESC",
		page, pageSize,
	)
}

func (r *repository) ListAnalysis(ctx context.Context, viewer Viewer, filter Filter, page, pageSize int) ([]ReportGroup, int64, error) {
	build := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("questionnaire_responses AS r").
			Scopes(viewer.Scope("r.respondent_id"), filterScope(filter))
	}
	rows, total, err := groupedPage(build,
		"r.questionnaire_id, r.respondent_id, r.row_identifier, r.status, r.submitted_at",
		"r.submitted_at DESC",
		page, pageSize,
	)
	if err != nil || len(rows) == 0 {
		return rows, total, err
	}

	names, err := r.userNames(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].RespondentName = names[rows[i].RespondentID]
	}
	return rows, total, nil
}

func (r *repository) userNames(ctx context.Context, rows []ReportGroup) (map[uint]string, error) {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RespondentID)
	}
	var users []RespondentOption
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id", "name").
		Where("id IN ?", ids).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func (r *repository) Export(ctx context.Context, viewer Viewer, filter Filter) ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.WithContext(ctx).
		Table("questionnaire_responses AS r").
		Select(`r.id AS response_id, r.questionnaire_id, q.title AS questionnaire_title,
			r.question_id, qs.question AS question, r.respondent_id, u.name AS respondent_name,
			r.row_identifier, r.response, r.status, r.submitted_at, r.reviewed_at, r.correction_reason`).
		Joins("JOIN questionnaires q ON q.id = r.questionnaire_id").
		Joins("JOIN questions qs ON qs.id = r.question_id").
		Joins("LEFT JOIN users u ON u.id = r.respondent_id").
		Scopes(viewer.Scope("r.respondent_id"), filterScope(filter)).
		Order("r.submitted_at DESC").Order("r.id").
		Scan(&rows).Error
	return rows, err
}

// RespondentOptions lists the accounts with an employee profile that the
// viewer can filter the analysis by.
func (r *repository) RespondentOptions(ctx context.Context, viewer Viewer) ([]RespondentOption, error) {
	var opts []RespondentOption
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id", "u.name").
		Joins("JOIN employees e ON e.user_id = u.id").
		Scopes(viewer.Scope("u.id")).
		Order("u.name").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) QuestionnaireTitle(ctx context.Context, id uint) (string, error) {
	var title string
	err := r.db.WithContext(ctx).
		Model(&questionnaire.Questionnaire{}).
		Where("id = ?", id).
		Pluck("title", &title).Error
	return title, err
}
