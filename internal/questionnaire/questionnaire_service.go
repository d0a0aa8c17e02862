package questionnaire

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	questionnaireerrors "github.com/KATBlackCoder/rapportflow/internal/questionnaire/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	PublishedOptionsKey = "questionnaires:published"
	publishedOptionsTTL = 10 * time.Minute
)

//go:generate mockgen -source=questionnaire_service.go -destination=mock/questionnaire_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]QuestionnaireResponse, int64, error)
	GetByID(ctx context.Context, id uint) (QuestionnaireResponse, error)
	Create(ctx context.Context, userID uint, req QuestionnaireRequest) (QuestionnaireResponse, error)
	Update(ctx context.Context, id uint, req QuestionnaireRequest) (QuestionnaireResponse, error)
	Delete(ctx context.Context, id uint) error
	PublishedOptions(ctx context.Context) ([]PublishedOption, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("questionnaire.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("questionnaire.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, filter ListFilter, page, pageSize int) ([]QuestionnaireResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list questionnaires failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]QuestionnaireResponse, len(rows))
	for i, q := range rows {
		resp[i] = MapToResponse(q)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (QuestionnaireResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return QuestionnaireResponse{}, s.mapRepositoryError(ctx, err)
	}
	return MapToResponse(*q), nil
}

func (s *service) Create(ctx context.Context, userID uint, req QuestionnaireRequest) (QuestionnaireResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create questionnaire requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("questions", len(req.Questions)),
	)

	if err := validateRequest(req); err != nil {
		l.Warn("create questionnaire rejected", zap.Error(err))
		return QuestionnaireResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create questionnaire begin tx failed", zap.Error(err))
		return QuestionnaireResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	q := &Questionnaire{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.QuestionnaireStatus(req.Status),
		TargetType:  domain.TargetType(req.TargetType),
	}
	if userID != 0 {
		q.CreatedBy = &userID
	}
	if err := qtx.Create(ctx, q); err != nil {
		l.Error("create questionnaire persist failed", zap.Error(err))
		return QuestionnaireResponse{}, err
	}
	if err := buildQuestions(ctx, qtx, q.ID, req.Questions); err != nil {
		l.Error("create questions failed", zap.Uint("questionnaire_id", q.ID), zap.Error(err))
		return QuestionnaireResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("create questionnaire commit failed", zap.Error(err))
		return QuestionnaireResponse{}, err
	}

	s.invalidate(ctx)
	l.Info("questionnaire created", zap.Uint("questionnaire_id", q.ID))
	return s.GetByID(ctx, q.ID)
}

func (s *service) Update(ctx context.Context, id uint, req QuestionnaireRequest) (QuestionnaireResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("questionnaire_id", id))

	if err := validateRequest(req); err != nil {
		l.Warn("update questionnaire rejected", zap.Error(err))
		return QuestionnaireResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update questionnaire begin tx failed", zap.Error(err))
		return QuestionnaireResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	err = qtx.UpdateFields(ctx, &Questionnaire{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.QuestionnaireStatus(req.Status),
		TargetType:  domain.TargetType(req.TargetType),
	})
	if err != nil {
		return QuestionnaireResponse{}, s.mapRepositoryError(ctx, err)
	}

	if req.Questions != nil {
		if err := qtx.DeleteQuestions(ctx, id); err != nil {
			l.Error("replace questions delete failed", zap.Error(err))
			return QuestionnaireResponse{}, err
		}
		if err := buildQuestions(ctx, qtx, id, req.Questions); err != nil {
			l.Error("replace questions insert failed", zap.Error(err))
			return QuestionnaireResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("update questionnaire commit failed", zap.Error(err))
		return QuestionnaireResponse{}, err
	}

	s.invalidate(ctx)
	l.Info("questionnaire updated", zap.Bool("questions_replaced", req.Questions != nil))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("questionnaire_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("delete questionnaire begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return s.mapRepositoryError(ctx, err)
	}
	if err := tx.Commit(); err != nil {
		l.Error("delete questionnaire commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	l.Info("questionnaire deleted")
	return nil
}

func (s *service) PublishedOptions(ctx context.Context) ([]PublishedOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PublishedOptionsKey).Result(); err == nil {
			var resp []PublishedOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PublishedOptionsKey, func() (interface{}, error) {
		opts, err := s.repo.PublishedOptions(ctx)
		if err != nil {
			return nil, err
		}
		if opts == nil {
			opts = []PublishedOption{}
		}
		if s.rdb != nil {
			if raw, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, PublishedOptionsKey, raw, publishedOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache published questionnaires failed", zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		s.logger.Error("load published questionnaires failed", zap.Error(err))
		return nil, err
	}
	return v.([]PublishedOption), nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PublishedOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate published questionnaires failed", zap.Error(err))
	}
}

func (s *service) mapRepositoryError(ctx context.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return questionnaireerrors.ErrQuestionnaireNotFound
	}
	contextutil.GetLogger(ctx, s.logger).Error("questionnaire repository failed", zap.Error(err))
	return err
}

func validateRequest(req QuestionnaireRequest) error {
	if !domain.QuestionnaireStatus(req.Status).Valid() {
		return questionnaireerrors.ErrInvalidStatus
	}
	if !domain.TargetType(req.TargetType).Valid() {
		return questionnaireerrors.ErrInvalidTargetType
	}
	for _, q := range req.Questions {
		if !domain.QuestionType(q.Type).Valid() {
			return questionnaireerrors.ErrInvalidQuestionType
		}
	}
	return nil
}

func MapToResponse(q Questionnaire) QuestionnaireResponse {
	resp := QuestionnaireResponse{
		ID:             q.ID,
		Title:          q.Title,
		Description:    q.Description,
		Status:         string(q.Status),
		TargetType:     string(q.TargetType),
		CreatedBy:      q.CreatedBy,
		QuestionsCount: len(q.Questions),
		Questions:      make([]QuestionResponse, len(q.Questions)),
		CreatedAt:      q.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      q.UpdatedAt.Format(time.RFC3339),
	}
	if q.Creator != nil {
		name := q.Creator.Name
		resp.CreatorName = &name
	}
	for i, question := range q.Questions {
		resp.Questions[i] = mapQuestion(question)
	}
	return resp
}

func mapQuestion(q Question) QuestionResponse {
	resp := QuestionResponse{
		ID:                    q.ID,
		Type:                  string(q.Type),
		Question:              q.Question,
		Required:              q.Required,
		Order:                 q.Order,
		Options:               q.Options,
		ConditionalQuestionID: q.ConditionalQuestionID,
		ConditionalValue:      q.ConditionalValue,
	}
	if q.ConditionalQuestion != nil {
		resp.ConditionalQuestion = &ConditionalQuestionResponse{
			ID:       q.ConditionalQuestion.ID,
			Question: q.ConditionalQuestion.Question,
		}
	}
	return resp
}
