package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	employeeerrors "github.com/KATBlackCoder/rapportflow/internal/employee/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"
	"github.com/KATBlackCoder/rapportflow/internal/shared/textutil"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ManagerOptionsKey = "employees:managers"
	managerOptionsTTL = time.Hour
)

var maxSalary = decimal.RequireFromString("99999999.99")

// InvalidateManagerOptions drops the cached managers list. A nil client is a no-op.
func InvalidateManagerOptions(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, ManagerOptionsKey).Err()
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, page, pageSize int) (ListEmployeesResponse, int64, error)
	ManagerOptions(ctx context.Context) ([]ManagerOption, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, page, pageSize int) (ListEmployeesResponse, int64, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("list employees requested",
		zap.String("request_id", rid),
		zap.Int("page", page),
	)

	rows, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("request_id", rid), zap.Error(err))
		return ListEmployeesResponse{}, 0, MapRepositoryError(err)
	}

	managers, err := s.ManagerOptions(ctx)
	if err != nil {
		return ListEmployeesResponse{}, 0, err
	}

	resp := ListEmployeesResponse{
		Employees: make([]EmployeeResponse, len(rows)),
		Managers:  managers,
	}
	for i, e := range rows {
		resp.Employees[i] = mapToResponse(e)
	}
	return resp, total, nil
}

func (s *service) ManagerOptions(ctx context.Context) ([]ManagerOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ManagerOptionsKey).Result(); err == nil {
			var resp []ManagerOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ManagerOptionsKey, func() (interface{}, error) {
		opts, err := s.repo.ManagerOptions(ctx)
		if err != nil {
			return nil, MapRepositoryError(err)
		}
		if opts == nil {
			opts = []ManagerOption{}
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, ManagerOptionsKey, raw, managerOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache manager options failed", zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		s.logger.Error("load manager options failed", zap.Error(err))
		return nil, err
	}

	return v.([]ManagerOption), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee failed", zap.Uint("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, MapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeID),
		zap.String("position", req.Position),
	)

	hireDate, err := validateScalars(req)
	if err != nil {
		l.Warn("create employee rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := checkUnique(ctx, qtx, req, 0); err != nil {
		l.Warn("create employee duplicate", zap.Error(err))
		return EmployeeResponse{}, err
	}

	position := domain.Position(req.Position)
	managerID, supervisorID, err := resolveHierarchy(ctx, qtx, position, req.Department, req.ManagerID, req.SupervisorID, 0)
	if err != nil {
		l.Warn("create employee hierarchy rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	e := &Employee{
		UserID:       req.UserID,
		EmployeeID:   req.EmployeeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     position,
		Department:   req.Department,
		ManagerID:    managerID,
		SupervisorID: supervisorID,
		Salary:       req.Salary,
		HireDate:     hireDate,
		Status:       domain.EmployeeStatus(req.Status),
	}
	if err := qtx.Create(ctx, e); err != nil {
		l.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateManagers(ctx)
	l.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", e.ID),
	)
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id uint, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	hireDate, err := validateScalars(req)
	if err != nil {
		l.Warn("update employee rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	if err := checkUnique(ctx, qtx, req, id); err != nil {
		l.Warn("update employee duplicate", zap.Error(err))
		return EmployeeResponse{}, err
	}

	position := domain.Position(req.Position)
	managerID, supervisorID, err := resolveHierarchy(ctx, qtx, position, req.Department, req.ManagerID, req.SupervisorID, id)
	if err != nil {
		l.Warn("update employee hierarchy rejected", zap.Error(err))
		return EmployeeResponse{}, err
	}

	e.UserID = req.UserID
	e.EmployeeID = req.EmployeeID
	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Email = req.Email
	e.Phone = req.Phone
	e.Position = position
	e.Department = req.Department
	e.ManagerID = managerID
	e.SupervisorID = supervisorID
	e.Salary = req.Salary
	e.HireDate = hireDate
	e.Status = domain.EmployeeStatus(req.Status)
	e.User = nil
	e.Manager = nil

	if err := qtx.Update(ctx, e); err != nil {
		l.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateManagers(ctx)
	l.Info("update employee success", zap.Uint("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("delete employee requested", zap.Uint("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.ClearReferences(ctx, id); err != nil {
		l.Error("delete employee clear references failed", zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateManagers(ctx)
	l.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) invalidateManagers(ctx context.Context) {
	if err := InvalidateManagerOptions(ctx, s.rdb); err != nil {
		s.logger.Error("failed to invalidate manager options cache",
			zap.String("key", ManagerOptionsKey),
			zap.Error(err),
		)
	}
}

func validateScalars(req EmployeeRequest) (*time.Time, error) {
	if req.Salary != nil && (req.Salary.IsNegative() || req.Salary.GreaterThan(maxSalary)) {
		return nil, employeeerrors.ErrInvalidSalary
	}
	if req.HireDate == nil || *req.HireDate == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, *req.HireDate)
	if err != nil || d.After(time.Now()) {
		return nil, employeeerrors.ErrInvalidHireDate
	}
	return &d, nil
}

func checkUnique(ctx context.Context, repo Repository, req EmployeeRequest, excludeID uint) error {
	type check struct {
		column UniqueColumn
		value  any
		err    error
	}
	checks := []check{
		{ColumnEmployeeID, req.EmployeeID, employeeerrors.ErrEmployeeCodeTaken},
		{ColumnPhone, req.Phone, employeeerrors.ErrPhoneTaken},
	}
	if req.Email != nil {
		checks = append(checks, check{ColumnEmail, *req.Email, employeeerrors.ErrEmailTaken})
	}
	if req.UserID != nil {
		ok, err := repo.UserExists(ctx, *req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrUserNotFound
		}
		checks = append(checks, check{ColumnUserID, *req.UserID, employeeerrors.ErrUserAlreadyLinked})
	}

	for _, c := range checks {
		taken, err := repo.ExistsBy(ctx, c.column, c.value, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return c.err
		}
	}
	return nil
}

// resolveHierarchy applies the reporting rules of each position and returns
// the manager and supervisor ids to store.
func resolveHierarchy(
	ctx context.Context,
	repo Repository,
	position domain.Position,
	department *string,
	managerID, supervisorID *uint,
	selfID uint,
) (*uint, *uint, error) {
	if selfID != 0 {
		if supervisorID != nil && *supervisorID == selfID {
			return nil, nil, employeeerrors.ErrSelfSupervisor
		}
		if managerID != nil && *managerID == selfID {
			return nil, nil, employeeerrors.ErrSelfManager
		}
	}

	switch position {
	case domain.PositionEmployer:
		if supervisorID == nil {
			return nil, nil, employeeerrors.ErrSupervisorRequired
		}
		err := checkSuperior(ctx, repo, *supervisorID, domain.PositionSuperviseur, department,
			employeeerrors.ErrInvalidSupervisor, employeeerrors.ErrSupervisorDepartment)
		if err != nil {
			return nil, nil, err
		}
		return nil, supervisorID, nil
	case domain.PositionSuperviseur:
		if managerID != nil {
			err := checkSuperior(ctx, repo, *managerID, domain.PositionChefSuperviseur, department,
				employeeerrors.ErrInvalidManager, employeeerrors.ErrManagerDepartment)
			if err != nil {
				return nil, nil, err
			}
		}
		return managerID, nil, nil
	case domain.PositionChefSuperviseur:
		if managerID != nil {
			err := checkSuperior(ctx, repo, *managerID, domain.PositionManager, department,
				employeeerrors.ErrInvalidManager, employeeerrors.ErrManagerDepartment)
			if err != nil {
				return nil, nil, err
			}
		}
		return managerID, nil, nil
	case domain.PositionManager:
		return nil, nil, nil
	default:
		return nil, nil, employeeerrors.ErrInvalidPosition
	}
}

func checkSuperior(
	ctx context.Context,
	repo Repository,
	id uint,
	want domain.Position,
	department *string,
	errPosition, errDepartment error,
) error {
	superior, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errPosition
	}
	if err != nil {
		return err
	}
	if superior.Position != want {
		return errPosition
	}
	if !sameDepartment(superior.Department, department) {
		return errDepartment
	}
	return nil
}

// sameDepartment compares optional department names; two nils are equal.
func sameDepartment(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		EmployeeID:      e.EmployeeID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		DisplayLastName: textutil.DisplayLastName(e.LastName),
		Email:           e.Email,
		Phone:           e.Phone,
		Position:        string(e.Position),
		PositionLabel:   e.Position.Label(),
		Department:      e.Department,
		ManagerID:       e.ManagerID,
		SupervisorID:    e.SupervisorID,
		Salary:          e.Salary,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.HireDate != nil {
		d := e.HireDate.Format(time.DateOnly)
		resp.HireDate = &d
	}
	if e.User != nil {
		u := e.User.Username
		resp.Username = &u
	}
	if e.Manager != nil {
		resp.Manager = &ManagerOption{
			ID:        e.Manager.ID,
			FirstName: e.Manager.FirstName,
			LastName:  e.Manager.LastName,
		}
	}
	return resp
}
