package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/events"
	notificationerrors "github.com/KATBlackCoder/rapportflow/internal/notification/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID uint, page, pageSize int) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, userID, id uint) (NotificationResponse, error)
	HandleReportEvent(ctx context.Context, event events.ReportLifecycleEvent) error
	HandleEmployeeProvisioned(ctx context.Context, event events.EmployeeProvisionedEvent) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, userID uint, page, pageSize int) ([]NotificationResponse, int64, error) {
	rows, total, err := s.repo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		s.logger.Error("list notifications failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	resp := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		resp[i] = mapToResponse(n)
	}
	return resp, total, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id uint) (NotificationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}
	if n.UserID != userID {
		l.Warn("mark read on foreign notification", zap.Uint("notification_id", id))
		return NotificationResponse{}, apperror.ErrForbidden
	}
	if n.ReadAt != nil {
		return mapToResponse(*n), nil
	}

	at := s.now()
	if err := s.repo.MarkRead(ctx, id, at); err != nil {
		l.Error("mark notification read failed", zap.Uint("notification_id", id), zap.Error(err))
		return NotificationResponse{}, err
	}
	n.ReadAt = &at
	return mapToResponse(*n), nil
}

func (s *service) HandleReportEvent(ctx context.Context, event events.ReportLifecycleEvent) error {
	title, err := s.repo.QuestionnaireTitle(ctx, event.QuestionnaireID)
	if err != nil {
		return err
	}

	var anchor *uint
	if len(event.ResponseIDs) > 0 {
		anchor = &event.ResponseIDs[0]
	}
	qid := event.QuestionnaireID

	var n *Notification
	switch event.EventType {
	case events.ReportSubmitted:
		recipient, err := s.repo.SupervisorUserID(ctx, event.RespondentID)
		if err != nil {
			return err
		}
		if recipient == nil {
			return nil
		}
		name, err := s.repo.EmployeeName(ctx, event.RespondentID)
		if err != nil {
			return err
		}
		n = &Notification{
			UserID: *recipient,
			Kind:   KindReportSubmitted,
			Title:  "Nouveau rapport",
			Body:   fmt.Sprintf("%s a soumis un rapport pour « %s ».", name, title),
		}
	case events.ReportReturnedForCorrection:
		body := fmt.Sprintf("Votre rapport « %s » a été renvoyé pour correction.", title)
		if event.CorrectionReason != nil && *event.CorrectionReason != "" {
			body += " Motif : " + *event.CorrectionReason
		}
		n = &Notification{
			UserID: event.RespondentID,
			Kind:   KindReportReturned,
			Title:  "Correction demandée",
			Body:   body,
		}
	case events.ReportResubmitted:
		if event.ReviewerID == nil {
			return nil
		}
		name, err := s.repo.EmployeeName(ctx, event.RespondentID)
		if err != nil {
			return err
		}
		n = &Notification{
			UserID: *event.ReviewerID,
			Kind:   KindReportResubmitted,
			Title:  "Rapport corrigé",
			Body:   fmt.Sprintf("%s a renvoyé le rapport corrigé « %s ».", name, title),
		}
	default:
		s.logger.Warn("unknown report event type", zap.String("event_type", event.EventType))
		return nil
	}

	n.QuestionnaireID = &qid
	n.ResponseID = anchor
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create report notification failed",
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("report notification created",
		zap.String("request_id", event.RequestID),
		zap.String("event_type", event.EventType),
		zap.Uint("recipient_id", n.UserID),
	)
	return nil
}

func (s *service) HandleEmployeeProvisioned(ctx context.Context, event events.EmployeeProvisionedEvent) error {
	n := &Notification{
		UserID: event.UserID,
		Kind:   KindWelcome,
		Title:  "Bienvenue sur RapportFlow",
		Body: fmt.Sprintf(
			"Votre compte %s (matricule %s) est prêt. Changez votre mot de passe à la première connexion.",
			event.Username, event.EmployeeCode,
		),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create welcome notification failed",
			zap.String("request_id", event.RequestID),
			zap.Uint("user_id", event.UserID),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("welcome notification created", zap.Uint("user_id", event.UserID))
	return nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:              n.ID,
		Kind:            n.Kind,
		Title:           n.Title,
		Body:            n.Body,
		QuestionnaireID: n.QuestionnaireID,
		ResponseID:      n.ResponseID,
		Read:            n.ReadAt != nil,
		CreatedAt:       n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
