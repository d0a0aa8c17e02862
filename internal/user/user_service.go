package user

import (
	"context"
	"errors"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"
	"github.com/KATBlackCoder/rapportflow/internal/shared/textutil"
	usererrors "github.com/KATBlackCoder/rapportflow/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	ChangePassword(ctx context.Context, id uint, req ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*u), nil
}

func (s *service) ChangePassword(ctx context.Context, id uint, req ChangePasswordRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		l.Warn("change password rejected", zap.Uint("user_id", id))
		return usererrors.ErrInvalidCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed), s.now()); err != nil {
		l.Error("failed to persist new password", zap.Uint("user_id", id), zap.Error(err))
		return err
	}

	l.Info("password changed", zap.Uint("user_id", id))
	return nil
}

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Username:           u.Username,
		Email:              u.Email,
		MustChangePassword: u.MustChangePassword(),
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.Employee != nil {
		resp.Employee = &EmployeeSummary{
			ID:              u.Employee.ID,
			EmployeeID:      u.Employee.EmployeeID,
			FirstName:       u.Employee.FirstName,
			LastName:        u.Employee.LastName,
			DisplayLastName: textutil.DisplayLastName(u.Employee.LastName),
			Position:        u.Employee.Position,
			PositionLabel:   domain.Position(u.Employee.Position).Label(),
			Department:      u.Employee.Department,
		}
	}
	return resp
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	return err
}
