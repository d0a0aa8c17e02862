// Package provisioning opens an account and its employee profile in one step.
package provisioning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/employee"
	employeeerrors "github.com/KATBlackCoder/rapportflow/internal/employee/errors"
	"github.com/KATBlackCoder/rapportflow/internal/events"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"
	provisioningerrors "github.com/KATBlackCoder/rapportflow/internal/provisioning/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"
	"github.com/KATBlackCoder/rapportflow/internal/shared/counter"
	"github.com/KATBlackCoder/rapportflow/internal/shared/textutil"
	"github.com/KATBlackCoder/rapportflow/internal/user"
	usererrors "github.com/KATBlackCoder/rapportflow/internal/user/errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const passwordPrefix = "ML"

// Username builds the login for a normalized last name and phone. n > 0
// appends a collision suffix.
func Username(normalized, phone string, n int) string {
	if n == 0 {
		return normalized + "@" + phone + ".org"
	}
	return normalized + strconv.Itoa(n) + "@" + phone + ".org"
}

// DefaultPassword is the password every provisioned account starts with.
func DefaultPassword(phone string) string {
	return passwordPrefix + phone
}

// EmployeeCode formats a counter value as EMP####.
func EmployeeCode(n int64) string {
	return fmt.Sprintf("%s%04d", employee.EmployeeCodePrefix, n)
}

//go:generate mockgen -source=provisioning_service.go -destination=mock/provisioning_service_mock.go -package=mock
type Service interface {
	Provision(ctx context.Context, req Request) (Result, error)
}

type service struct {
	db        *sql.DB
	users     user.Repository
	employees employee.Repository
	counters  counter.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	validate  *validator.Validate
	hashCost  int
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	users user.Repository,
	employees employee.Repository,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("provisioning.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("provisioning.service")
	}

	v := validator.New()
	v.SetTagName("binding")
	apperror.RegisterValidations(v)

	return &service{
		db:        db,
		users:     users,
		employees: employees,
		counters:  counters,
		outbox:    outbox,
		rdb:       rdb,
		validate:  v,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Provision(ctx context.Context, req Request) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("provision requested",
		zap.String("request_id", rid),
		zap.String("position", req.Position),
	)

	if err := s.validate.Struct(req); err != nil {
		l.Warn("provision validation failed", zap.Error(err))
		return Result{}, apperror.MapValidationError(err)
	}
	position := domain.Position(req.Position)
	if !position.Valid() {
		return Result{}, employeeerrors.ErrInvalidPosition
	}

	normalized := textutil.NormalizeLogin(req.LastName)
	if normalized == "" {
		return Result{}, provisioningerrors.ErrLastNameNotLatin
	}

	password := DefaultPassword(req.Phone)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		l.Error("provision hash password failed", zap.Error(err))
		return Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("provision begin tx failed", zap.Error(err))
		return Result{}, err
	}
	defer tx.Rollback()

	users := s.users.WithTx(tx)
	employees := s.employees.WithTx(tx)

	taken, err := employees.ExistsBy(ctx, employee.ColumnPhone, req.Phone, 0)
	if err != nil {
		return Result{}, err
	}
	if taken {
		l.Warn("provision phone already used")
		return Result{}, employeeerrors.ErrPhoneTaken
	}

	username, err := s.freeUsername(ctx, users, normalized, req.Phone)
	if err != nil {
		return Result{}, err
	}

	floor, err := employees.MaxEmployeeNumber(ctx)
	if err != nil {
		l.Error("provision read employee numbers failed", zap.Error(err))
		return Result{}, err
	}
	next, err := s.counters.WithTx(tx).GetNextValue(ctx, counter.EmployeeCode, floor)
	if err != nil {
		l.Error("provision next employee code failed", zap.Error(err))
		return Result{}, err
	}
	code := EmployeeCode(next)

	u := &user.User{
		Name:     req.FirstName + " " + req.LastName,
		Username: username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := users.Create(ctx, u); err != nil {
		l.Error("provision create user failed", zap.Error(err))
		return Result{}, mapRepositoryError(err)
	}

	e := &employee.Employee{
		UserID:     &u.ID,
		EmployeeID: code,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   position,
		Department: req.Department,
		Status:     domain.EmployeeStatusActive,
	}
	if err := employees.Create(ctx, e); err != nil {
		l.Error("provision create employee failed", zap.Error(err))
		return Result{}, mapRepositoryError(err)
	}

	event, err := kafka.NewOutboxEvent(
		rid,
		"employee",
		strconv.FormatUint(uint64(e.ID), 10),
		events.EmployeeProvisioned,
		events.EmployeeLifecycleTopic,
		events.EmployeeProvisionedEvent{
			EventType:    events.EmployeeProvisioned,
			RequestID:    rid,
			EmployeeID:   e.ID,
			EmployeeCode: code,
			UserID:       u.ID,
			Username:     username,
			Position:     string(position),
			Department:   req.Department,
			OccurredAt:   s.now().UTC(),
		},
	)
	if err != nil {
		return Result{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		l.Error("provision outbox persist failed", zap.Error(err))
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("provision commit failed", zap.Error(err))
		return Result{}, err
	}

	if position == domain.PositionManager || position == domain.PositionChefSuperviseur {
		if err := employee.InvalidateManagerOptions(ctx, s.rdb); err != nil {
			l.Error("failed to invalidate manager options cache", zap.Error(err))
		}
	}

	l.Info("provision success",
		zap.String("request_id", rid),
		zap.Uint("user_id", u.ID),
		zap.Uint("employee_id", e.ID),
		zap.String("employee_code", code),
	)

	return Result{
		UserID:          u.ID,
		EmployeeID:      e.ID,
		EmployeeCode:    code,
		Name:            u.Name,
		Username:        username,
		DefaultPassword: password,
		Position:        string(position),
		Department:      req.Department,
	}, nil
}

// freeUsername walks the collision suffixes until an unused username appears.
func (s *service) freeUsername(ctx context.Context, users user.Repository, normalized, phone string) (string, error) {
	for n := 0; ; n++ {
		candidate := Username(normalized, phone, n)
		exists, err := users.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_username" {
		return usererrors.ErrUsernameTaken
	}
	return employee.MapRepositoryError(err)
}
