package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	autherrors "github.com/KATBlackCoder/rapportflow/internal/auth/errors"
	"github.com/KATBlackCoder/rapportflow/internal/provisioning"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"
	"github.com/KATBlackCoder/rapportflow/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	minPasswordLength = 8
)

// TokenConfig holds the HMAC secret and the lifetimes of issued tokens.
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error)
	Me(ctx context.Context, userID uint) (user.UserResponse, error)
	FirstLogin(ctx context.Context, userID uint, req FirstLoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req provisioning.Request) (provisioning.Result, error)
}

type service struct {
	users       user.Repository
	provisioner provisioning.Service
	tokens      TokenConfig
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	users user.Repository,
	provisioner provisioning.Service,
	tokens TokenConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = 15 * time.Minute
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = 7 * 24 * time.Hour
	}
	return &service{
		users:       users,
		provisioner: provisioner,
		tokens:      tokens,
		now:         time.Now,
		logger:      l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login rejected", zap.String("username", username))
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		l.Error("failed to load user for login", zap.Error(err))
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		l.Warn("login rejected", zap.String("username", username))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issue(*u)
	if err != nil {
		l.Error("failed to sign tokens", zap.Uint("user_id", u.ID), zap.Error(err))
		return AuthResponse{}, err
	}

	l.Info("user logged in",
		zap.Uint("user_id", u.ID),
		zap.Bool("must_change_password", u.MustChangePassword()),
	)
	return resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if refreshToken == "" {
		return AuthResponse{}, autherrors.ErrMissingRefreshToken
	}

	userID, err := s.parseRefresh(refreshToken)
	if err != nil {
		l.Warn("refresh token rejected", zap.Error(err))
		return AuthResponse{}, err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		l.Error("failed to load user for refresh", zap.Uint("user_id", userID), zap.Error(err))
		return AuthResponse{}, err
	}

	return s.issue(*u)
}

func (s *service) Me(ctx context.Context, userID uint) (user.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrUserNotFound
		}
		contextutil.GetLogger(ctx, s.logger).Error("failed to load current user", zap.Uint("user_id", userID), zap.Error(err))
		return user.UserResponse{}, err
	}
	return user.MapToResponse(*u), nil
}

func (s *service) FirstLogin(ctx context.Context, userID uint, req FirstLoginRequest) (AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("user_id", userID))

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		l.Error("failed to load user for first login", zap.Error(err))
		return AuthResponse{}, err
	}

	if !u.MustChangePassword() {
		l.Debug("first login already completed")
		return s.issue(*u)
	}

	now := s.now()
	switch req.Action {
	case "keep":
		if err := s.users.MarkPasswordChanged(ctx, u.ID, now); err != nil {
			l.Error("failed to confirm default password", zap.Error(err))
			return AuthResponse{}, err
		}
	case "change":
		if err := validateNewPassword(req); err != nil {
			l.Warn("first login password rejected", zap.Error(err))
			return AuthResponse{}, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			l.Error("failed to hash password", zap.Error(err))
			return AuthResponse{}, err
		}
		if err := s.users.UpdatePassword(ctx, u.ID, string(hashed), now); err != nil {
			l.Error("failed to store password", zap.Error(err))
			return AuthResponse{}, err
		}
		u.Password = string(hashed)
	default:
		return AuthResponse{}, autherrors.ErrInvalidFirstLoginAction
	}

	u.PasswordChangedAt = &now
	l.Info("first login completed", zap.String("action", req.Action))
	return s.issue(*u)
}

func (s *service) Register(ctx context.Context, req provisioning.Request) (provisioning.Result, error) {
	return s.provisioner.Provision(ctx, req)
}

func validateNewPassword(req FirstLoginRequest) error {
	switch {
	case req.Password == "":
		return autherrors.ErrPasswordRequired
	case len([]rune(req.Password)) < minPasswordLength:
		return autherrors.ErrPasswordTooShort
	case req.Password != req.PasswordConfirmation:
		return autherrors.ErrPasswordConfirmation
	}
	return nil
}

func (s *service) issue(u user.User) (AuthResponse, error) {
	access, err := s.sign(u, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		return AuthResponse{}, err
	}
	refresh, err := s.sign(u, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{
		User:         user.MapToResponse(u),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *service) sign(u user.User, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":              strconv.FormatUint(uint64(u.ID), 10),
		"username":             u.Username,
		"must_change_password": u.MustChangePassword(),
		"typ":                  typ,
		"iat":                  now.Unix(),
		"exp":                  now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.tokens.Secret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", autherrors.ErrTokenGenerationFailed, err)
	}
	return signed, nil
}

func (s *service) parseRefresh(raw string) (uint, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.tokens.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, autherrors.ErrTokenExpired
		}
		return 0, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, autherrors.ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return 0, autherrors.ErrInvalidRefreshToken
	}
	raw, _ = claims["user_id"].(string)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, autherrors.ErrInvalidRefreshToken
	}
	return uint(id), nil
}
