package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/events"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	reporterrors "github.com/KATBlackCoder/rapportflow/internal/report/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateReport = "report"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Menu(ctx context.Context, userID uint) ([]MenuOption, error)
	AvailableQuestionnaires(ctx context.Context, userID uint, page, pageSize int) ([]questionnaire.QuestionnaireResponse, int64, error)
	Form(ctx context.Context, userID, questionnaireID uint) (questionnaire.QuestionnaireResponse, error)
	Submit(ctx context.Context, userID uint, req SubmitRequest) (SubmitResult, error)
	Mine(ctx context.Context, userID uint, filter Filter, page, pageSize int) ([]ReportGroup, int64, error)
	ShowMine(ctx context.Context, userID, id uint) (ReportDetail, error)
	Corrections(ctx context.Context, userID uint, page, pageSize int) ([]ReportGroup, int64, error)
	ShowCorrection(ctx context.Context, userID, id uint) (ReportDetail, error)
	Resubmit(ctx context.Context, userID, id uint, req SubmitRequest) (SubmitResult, error)
	Analysis(ctx context.Context, userID uint, filter Filter, page, pageSize int) (AnalysisResponse, int64, error)
	ShowAnalysis(ctx context.Context, userID, id uint) (ReportDetail, error)
	ReturnForCorrection(ctx context.Context, userID, id uint, req ReturnRequest) (ReturnResult, error)
	Export(ctx context.Context, userID uint, filter Filter) ([]ExportRow, error)
}

type service struct {
	db             *sql.DB
	repo           Repository
	questionnaires questionnaire.Repository
	outbox         kafka.OutboxRepository
	now            func() time.Time
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	questionnaires questionnaire.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		questionnaires: questionnaires,
		outbox:         outbox,
		now:            time.Now,
		logger:         l,
	}
}

var (
	menuCreate = MenuOption{
		Value:       "create",
		Label:       "Faire un rapport",
		Description: "Remplir un nouveau questionnaire et soumettre un rapport",
	}
	menuMine = MenuOption{
		Value:       "my-reports",
		Label:       "Regarder ses rapports",
		Description: "Consulter vos rapports déjà soumis (lecture seule)",
	}
	menuCorrections = MenuOption{
		Value:       "corrections",
		Label:       "Corriger un rapport",
		Description: "Corriger les rapports renvoyés pour correction",
	}
	menuTeamAnalysis = MenuOption{
		Value:       "analysis",
		Label:       "Analyser rapport",
		Description: "Consulter et analyser les rapports de votre groupe",
	}
	menuAnalysis = MenuOption{
		Value:       "analysis",
		Label:       "Analyser rapport",
		Description: "Consulter et analyser tous les rapports soumis dans l'application",
	}
)

// MenuFor lists the report entry points open to a position.
func MenuFor(p domain.Position) []MenuOption {
	switch p {
	case domain.PositionEmployer:
		return []MenuOption{menuCreate, menuMine, menuCorrections}
	case domain.PositionSuperviseur:
		return []MenuOption{menuCreate, menuMine, menuCorrections, menuTeamAnalysis}
	case domain.PositionChefSuperviseur, domain.PositionManager:
		return []MenuOption{menuAnalysis}
	default:
		return []MenuOption{}
	}
}

// targetsFor lists the questionnaire audiences a position answers.
func targetsFor(p domain.Position) []domain.TargetType {
	if p == domain.PositionEmployer {
		return []domain.TargetType{domain.TargetEmployees}
	}
	return []domain.TargetType{domain.TargetEmployees, domain.TargetSupervisors}
}

func (s *service) Menu(ctx context.Context, userID uint) ([]MenuOption, error) {
	v, err := s.repo.Viewer(ctx, userID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load viewer failed", zap.Error(err))
		return nil, err
	}
	if v == nil {
		return []MenuOption{}, nil
	}
	return MenuFor(v.Position), nil
}

// viewer loads the requester's profile and rejects accounts without one.
func (s *service) viewer(ctx context.Context, userID uint) (*Viewer, error) {
	v, err := s.repo.Viewer(ctx, userID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load viewer failed", zap.Error(err))
		return nil, err
	}
	if v == nil {
		contextutil.GetLogger(ctx, s.logger).Warn("report access without employee", zap.Uint("user_id", userID))
		return nil, reporterrors.ErrEmployeeRequired
	}
	return v, nil
}

func (s *service) AvailableQuestionnaires(ctx context.Context, userID uint, page, pageSize int) ([]questionnaire.QuestionnaireResponse, int64, error) {
	v, err := s.viewer(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := s.repo.AvailableQuestionnaires(ctx, targetsFor(v.Position), page, pageSize)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list available questionnaires failed", zap.Error(err))
		return nil, 0, err
	}
	resp := make([]questionnaire.QuestionnaireResponse, len(rows))
	for i, q := range rows {
		resp[i] = questionnaire.MapToResponse(q)
	}
	return resp, total, nil
}

func (s *service) Form(ctx context.Context, userID, questionnaireID uint) (questionnaire.QuestionnaireResponse, error) {
	if _, err := s.viewer(ctx, userID); err != nil {
		return questionnaire.QuestionnaireResponse{}, err
	}
	q, err := s.publishedQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return questionnaire.QuestionnaireResponse{}, err
	}
	return questionnaire.MapToResponse(*q), nil
}

func (s *service) publishedQuestionnaire(ctx context.Context, id uint) (*questionnaire.Questionnaire, error) {
	q, err := s.questionnaires.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reporterrors.ErrQuestionnaireNotFound
	}
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load questionnaire failed", zap.Uint("questionnaire_id", id), zap.Error(err))
		return nil, err
	}
	if q.Status != domain.QuestionnairePublished {
		return nil, reporterrors.ErrQuestionnaireNotFound
	}
	return q, nil
}

// buildRows checks every answer against its question and returns the rows
// to insert.
func buildRows(q *questionnaire.Questionnaire, userID uint, inputs []AnswerInput, at time.Time) ([]Response, error) {
	questions := make(map[uint]questionnaire.Question, len(q.Questions))
	for _, question := range q.Questions {
		questions[question.ID] = question
	}

	rows := make([]Response, len(inputs))
	for i, in := range inputs {
		question, ok := questions[in.QuestionID]
		if !ok {
			return nil, reporterrors.ErrQuestionMismatch
		}
		if err := ValidateAnswer(question, in.Response); err != nil {
			return nil, reporterrors.InvalidAnswer(i, err.Error())
		}
		submittedAt := at
		rows[i] = Response{
			QuestionnaireID: q.ID,
			QuestionID:      in.QuestionID,
			RespondentID:    userID,
			RowIdentifier:   in.RowIdentifier,
			Answer:          in.Response,
			Status:          domain.ResponseSubmitted,
			SubmittedAt:     &submittedAt,
		}
	}
	return rows, nil
}

func responseIDs(rows []Response) []uint {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func aggregateID(key ReportKey) string {
	row := ""
	if key.RowIdentifier != nil {
		row = *key.RowIdentifier
	}
	return fmt.Sprintf("%d:%d:%s", key.QuestionnaireID, key.RespondentID, row)
}

func (s *service) writeEvent(ctx context.Context, tx *sql.Tx, key ReportKey, e events.ReportLifecycleEvent) error {
	e.RequestID = contextutil.GetRequestID(ctx)
	e.QuestionnaireID = key.QuestionnaireID
	e.RespondentID = key.RespondentID
	e.RowIdentifier = key.RowIdentifier

	event, err := kafka.NewOutboxEvent(e.RequestID, aggregateReport, aggregateID(key), e.EventType, events.ReportLifecycleTopic, e)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) Submit(ctx context.Context, userID uint, req SubmitRequest) (SubmitResult, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("questionnaire_id", req.QuestionnaireID))
	l.Debug("submit report requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("answers", len(req.Responses)),
	)

	if _, err := s.viewer(ctx, userID); err != nil {
		return SubmitResult{}, err
	}
	q, err := s.publishedQuestionnaire(ctx, req.QuestionnaireID)
	if err != nil {
		return SubmitResult{}, err
	}

	at := s.now().UTC()
	rows, err := buildRows(q, userID, req.Responses, at)
	if err != nil {
		l.Warn("submit report rejected", zap.Error(err))
		return SubmitResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit report begin tx failed", zap.Error(err))
		return SubmitResult{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateResponses(ctx, rows); err != nil {
		l.Error("submit report persist failed", zap.Error(err))
		return SubmitResult{}, err
	}

	ids := responseIDs(rows)
	err = s.writeEvent(ctx, tx, rows[0].Key(), events.ReportLifecycleEvent{
		EventType:   events.ReportSubmitted,
		ResponseIDs: ids,
		OccurredAt:  at,
	})
	if err != nil {
		l.Error("submit report outbox persist failed", zap.Error(err))
		return SubmitResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit report commit failed", zap.Error(err))
		return SubmitResult{}, err
	}

	l.Info("report submitted", zap.Int("answers", len(ids)))
	return SubmitResult{QuestionnaireID: q.ID, ResponseIDs: ids, SubmittedAt: at}, nil
}

func (s *service) Mine(ctx context.Context, userID uint, filter Filter, page, pageSize int) ([]ReportGroup, int64, error) {
	filter.RespondentID = nil
	rows, total, err := s.repo.ListMine(ctx, userID, filter, page, pageSize)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list own reports failed", zap.Error(err))
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *service) anchor(ctx context.Context, id uint) (*Response, error) {
	r, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reporterrors.ErrResponseNotFound
	}
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load response failed", zap.Uint("response_id", id), zap.Error(err))
		return nil, err
	}
	return r, nil
}

func (s *service) ShowMine(ctx context.Context, userID, id uint) (ReportDetail, error) {
	a, err := s.anchor(ctx, id)
	if err != nil {
		return ReportDetail{}, err
	}
	if a.RespondentID != userID {
		contextutil.GetLogger(ctx, s.logger).Warn("show report denied", zap.Uint("response_id", id))
		return ReportDetail{}, apperror.ErrForbidden
	}
	return s.detail(ctx, a, false)
}

func (s *service) Corrections(ctx context.Context, userID uint, page, pageSize int) ([]ReportGroup, int64, error) {
	rows, total, err := s.repo.ListCorrections(ctx, userID, page, pageSize)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list corrections failed", zap.Error(err))
		return nil, 0, err
	}
	return rows, total, nil
}

// correctionAnchor loads a returned row owned by the requester.
func (s *service) correctionAnchor(ctx context.Context, userID, id uint) (*Response, error) {
	a, err := s.anchor(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.RespondentID != userID || a.Status != domain.ResponseReturnedForCorrection {
		contextutil.GetLogger(ctx, s.logger).Warn("correction access denied",
			zap.Uint("response_id", id),
			zap.String("status", string(a.Status)),
		)
		return nil, apperror.ErrForbidden
	}
	return a, nil
}

func (s *service) ShowCorrection(ctx context.Context, userID, id uint) (ReportDetail, error) {
	a, err := s.correctionAnchor(ctx, userID, id)
	if err != nil {
		return ReportDetail{}, err
	}
	return s.detail(ctx, a, false)
}

// Resubmit replaces every row of the returned report with the new answers.
func (s *service) Resubmit(ctx context.Context, userID, id uint, req SubmitRequest) (SubmitResult, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("response_id", id))
	l.Debug("resubmit report requested", zap.String("request_id", contextutil.GetRequestID(ctx)))

	a, err := s.correctionAnchor(ctx, userID, id)
	if err != nil {
		return SubmitResult{}, err
	}
	if req.QuestionnaireID != a.QuestionnaireID {
		l.Warn("resubmit questionnaire mismatch", zap.Uint("questionnaire_id", req.QuestionnaireID))
		return SubmitResult{}, reporterrors.ErrQuestionnaireMismatch
	}

	q, err := s.questionnaires.FindByID(ctx, a.QuestionnaireID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SubmitResult{}, reporterrors.ErrQuestionnaireNotFound
	}
	if err != nil {
		l.Error("resubmit load questionnaire failed", zap.Error(err))
		return SubmitResult{}, err
	}

	at := s.now().UTC()
	rows, err := buildRows(q, userID, req.Responses, at)
	if err != nil {
		l.Warn("resubmit report rejected", zap.Error(err))
		return SubmitResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("resubmit begin tx failed", zap.Error(err))
		return SubmitResult{}, err
	}
	defer tx.Rollback()

	rtx := s.repo.WithTx(tx)
	if err := rtx.DeleteLogicalReport(ctx, a.Key()); err != nil {
		l.Error("resubmit delete previous answers failed", zap.Error(err))
		return SubmitResult{}, err
	}
	if err := rtx.CreateResponses(ctx, rows); err != nil {
		l.Error("resubmit persist failed", zap.Error(err))
		return SubmitResult{}, err
	}

	ids := responseIDs(rows)
	err = s.writeEvent(ctx, tx, rows[0].Key(), events.ReportLifecycleEvent{
		EventType:   events.ReportResubmitted,
		ResponseIDs: ids,
		ReviewerID:  a.ReviewedBy,
		OccurredAt:  at,
	})
	if err != nil {
		l.Error("resubmit outbox persist failed", zap.Error(err))
		return SubmitResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("resubmit commit failed", zap.Error(err))
		return SubmitResult{}, err
	}

	l.Info("report resubmitted", zap.Int("answers", len(ids)))
	return SubmitResult{QuestionnaireID: q.ID, ResponseIDs: ids, SubmittedAt: at}, nil
}

func (s *service) Analysis(ctx context.Context, userID uint, filter Filter, page, pageSize int) (AnalysisResponse, int64, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	v, err := s.viewer(ctx, userID)
	if err != nil {
		return AnalysisResponse{}, 0, err
	}

	rows, total, err := s.repo.ListAnalysis(ctx, *v, filter, page, pageSize)
	if err != nil {
		l.Error("list analysis failed", zap.Error(err))
		return AnalysisResponse{}, 0, err
	}
	respondents, err := s.repo.RespondentOptions(ctx, *v)
	if err != nil {
		l.Error("list respondent options failed", zap.Error(err))
		return AnalysisResponse{}, 0, err
	}

	if rows == nil {
		rows = []ReportGroup{}
	}
	if respondents == nil {
		respondents = []RespondentOption{}
	}
	return AnalysisResponse{
		Reports:     rows,
		Respondents: respondents,
		CanExport:   v.Position.CanExport(),
	}, total, nil
}

// inScope loads the respondent profile and checks it against the viewer.
func (s *service) inScope(ctx context.Context, v Viewer, respondentUserID uint) (bool, error) {
	switch v.Position {
	case domain.PositionManager:
		return true, nil
	case domain.PositionEmployer:
		return respondentUserID == v.UserID, nil
	case domain.PositionSuperviseur:
		if respondentUserID == v.UserID {
			return true, nil
		}
	}
	r, err := s.repo.Respondent(ctx, respondentUserID)
	if err != nil {
		return false, err
	}
	return v.CanView(respondentUserID, r), nil
}

func (s *service) ShowAnalysis(ctx context.Context, userID, id uint) (ReportDetail, error) {
	v, err := s.viewer(ctx, userID)
	if err != nil {
		return ReportDetail{}, err
	}
	a, err := s.anchor(ctx, id)
	if err != nil {
		return ReportDetail{}, err
	}
	ok, err := s.inScope(ctx, *v, a.RespondentID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load respondent failed", zap.Error(err))
		return ReportDetail{}, err
	}
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("show analysis denied", zap.Uint("response_id", id))
		return ReportDetail{}, apperror.ErrForbidden
	}
	return s.detail(ctx, a, v.Position.CanExport())
}

// ReturnForCorrection sends the selected rows of one report back to their
// respondent with a single reason.
func (s *service) ReturnForCorrection(ctx context.Context, userID, id uint, req ReturnRequest) (ReturnResult, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("response_id", id))
	l.Debug("return report requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("responses", len(req.ResponseIDs)),
	)

	v, err := s.viewer(ctx, userID)
	if err != nil {
		return ReturnResult{}, err
	}
	a, err := s.anchor(ctx, id)
	if err != nil {
		return ReturnResult{}, err
	}
	ok, err := s.inScope(ctx, *v, a.RespondentID)
	if err != nil {
		l.Error("return load respondent failed", zap.Error(err))
		return ReturnResult{}, err
	}
	if !ok {
		l.Warn("return report denied")
		return ReturnResult{}, apperror.ErrForbidden
	}

	ids := uniqueIDs(req.ResponseIDs)
	rows, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		l.Error("return load responses failed", zap.Error(err))
		return ReturnResult{}, err
	}
	if len(rows) != len(ids) {
		l.Warn("return unknown responses", zap.Int("found", len(rows)), zap.Int("requested", len(ids)))
		return ReturnResult{}, reporterrors.ErrUnknownResponses
	}
	for _, r := range rows {
		if r.QuestionnaireID != a.QuestionnaireID || r.RespondentID != a.RespondentID {
			l.Warn("return responses mismatch", zap.Uint("other_id", r.ID))
			return ReturnResult{}, reporterrors.ErrResponsesMismatch
		}
	}

	at := s.now().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("return begin tx failed", zap.Error(err))
		return ReturnResult{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).MarkReturned(ctx, ids, userID, req.CorrectionReason, at); err != nil {
		l.Error("return persist failed", zap.Error(err))
		return ReturnResult{}, err
	}

	reviewer := userID
	reason := req.CorrectionReason
	err = s.writeEvent(ctx, tx, a.Key(), events.ReportLifecycleEvent{
		EventType:        events.ReportReturnedForCorrection,
		ResponseIDs:      ids,
		ReviewerID:       &reviewer,
		CorrectionReason: &reason,
		OccurredAt:       at,
	})
	if err != nil {
		l.Error("return outbox persist failed", zap.Error(err))
		return ReturnResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("return commit failed", zap.Error(err))
		return ReturnResult{}, err
	}

	l.Info("report returned for correction", zap.Int("responses", len(ids)))
	return ReturnResult{ResponseIDs: ids, ReviewedAt: at}, nil
}

func (s *service) Export(ctx context.Context, userID uint, filter Filter) ([]ExportRow, error) {
	v, err := s.viewer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !v.Position.CanExport() {
		contextutil.GetLogger(ctx, s.logger).Warn("export denied", zap.String("position", string(v.Position)))
		return nil, apperror.ErrForbidden
	}

	rows, err := s.repo.Export(ctx, *v, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("export reports failed", zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []ExportRow{}
	}
	return rows, nil
}

func (s *service) detail(ctx context.Context, a *Response, canExport bool) (ReportDetail, error) {
	rows, err := s.repo.LogicalReport(ctx, a.Key())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load report rows failed", zap.Error(err))
		return ReportDetail{}, err
	}
	title, err := s.repo.QuestionnaireTitle(ctx, a.QuestionnaireID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load questionnaire title failed", zap.Error(err))
		return ReportDetail{}, err
	}

	d := ReportDetail{
		ResponseID:         a.ID,
		QuestionnaireID:    a.QuestionnaireID,
		QuestionnaireTitle: title,
		RespondentID:       a.RespondentID,
		RowIdentifier:      a.RowIdentifier,
		Status:             string(a.Status),
		SubmittedAt:        a.SubmittedAt,
		ReviewedBy:         a.ReviewedBy,
		ReviewedAt:         a.ReviewedAt,
		CorrectionReason:   a.CorrectionReason,
		Responses:          make([]AnswerItem, len(rows)),
		CanExport:          canExport,
	}
	for i, r := range rows {
		d.Responses[i] = mapAnswer(r)
	}
	return d, nil
}

func mapAnswer(r Response) AnswerItem {
	item := AnswerItem{
		ID:            r.ID,
		QuestionID:    r.QuestionID,
		RowIdentifier: r.RowIdentifier,
		Response:      r.Answer,
		Status:        string(r.Status),
		SubmittedAt:   r.SubmittedAt,
	}
	if r.Question != nil {
		item.Question = r.Question.Question
		item.QuestionType = string(r.Question.Type)
		item.Order = r.Question.Order
	}
	return item
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
