package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/employee"
	employeeerrors "github.com/KATBlackCoder/rapportflow/internal/employee/errors"
	employeeMock "github.com/KATBlackCoder/rapportflow/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   employee.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }

func employerRequest() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		EmployeeID:   "EMP0042",
		FirstName:    "Awa",
		LastName:     "Traoré",
		Phone:        "76123456",
		Position:     string(domain.PositionEmployer),
		Department:   strPtr("Ventes"),
		SupervisorID: uintPtr(7),
		ManagerID:    uintPtr(3),
		Status:       string(domain.EmployeeStatusActive),
	}
}

func expectNoDuplicates(deps *serviceDeps, excludeID uint) {
	deps.repo.EXPECT().ExistsBy(gomock.Any(), employee.ColumnEmployeeID, gomock.Any(), excludeID).Return(false, nil)
	deps.repo.EXPECT().ExistsBy(gomock.Any(), employee.ColumnPhone, gomock.Any(), excludeID).Return(false, nil)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - employer keeps supervisor and drops manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().FindByID(ctx, uint(7)).Return(&employee.Employee{
			ID:         7,
			Position:   domain.PositionSuperviseur,
			Department: strPtr("Ventes"),
		}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP0042", e.EmployeeID)
			assert.Equal(t, uint(7), *e.SupervisorID)
			assert.Nil(t, e.ManagerID)
			assert.Equal(t, domain.EmployeeStatusActive, e.Status)
			e.ID = 42
			return nil
		})
		deps.redismock.ExpectDel(employee.ManagerOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "TRAORE", resp.DisplayLastName)
		assert.Equal(t, "Employé", resp.PositionLabel)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("manager clears both links", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.Position = string(domain.PositionManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Nil(t, e.SupervisorID)
			assert.Nil(t, e.ManagerID)
			return nil
		})
		deps.redismock.ExpectDel(employee.ManagerOptionsKey).SetVal(1)

		_, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("employer without supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.SupervisorID = nil

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrSupervisorRequired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("supervisor from another department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().FindByID(ctx, uint(7)).Return(&employee.Employee{
			ID:         7,
			Position:   domain.PositionSuperviseur,
			Department: strPtr("Logistique"),
		}, nil)

		_, err := deps.service.Create(ctx, employerRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrSupervisorDepartment)
	})

	t.Run("supervisor without department matches employee without department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.Department = nil

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().FindByID(ctx, uint(7)).Return(&employee.Employee{ID: 7, Position: domain.PositionSuperviseur}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.ManagerOptionsKey).SetVal(1)

		_, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("superviseur manager must be chef_superviseur", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.Position = string(domain.PositionSuperviseur)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&employee.Employee{
			ID:         3,
			Position:   domain.PositionManager,
			Department: strPtr("Ventes"),
		}, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidManager)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsBy(gomock.Any(), employee.ColumnEmployeeID, "EMP0042", uint(0)).Return(false, nil)
		deps.repo.EXPECT().ExistsBy(gomock.Any(), employee.ColumnPhone, "76123456", uint(0)).Return(true, nil)

		_, err := deps.service.Create(ctx, employerRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrPhoneTaken)
	})

	t.Run("unknown user id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.UserID = uintPtr(99)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UserExists(gomock.Any(), uint(99)).Return(false, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrUserNotFound)
	})

	t.Run("unique violation at insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.Position = string(domain.PositionManager)
		req.Email = strPtr("awa@example.com")

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		expectNoDuplicates(deps, 0)
		deps.repo.EXPECT().ExistsBy(gomock.Any(), employee.ColumnEmail, "awa@example.com", uint(0)).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("salary out of range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		salary := decimal.RequireFromString("100000000")
		req.Salary = &salary

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("self supervisor is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.SupervisorID = uintPtr(42)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(42)).Return(&employee.Employee{ID: 42}, nil)
		expectNoDuplicates(deps, 42)

		_, err := deps.service.Update(ctx, 42, req)

		assert.ErrorIs(t, err, employeeerrors.ErrSelfSupervisor)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 42, employerRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success - chef_superviseur reporting to a manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := employerRequest()
		req.Position = string(domain.PositionChefSuperviseur)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(42)).Return(&employee.Employee{ID: 42, Position: domain.PositionSuperviseur}, nil)
		expectNoDuplicates(deps, 42)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&employee.Employee{
			ID:         3,
			Position:   domain.PositionManager,
			Department: strPtr("Ventes"),
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, domain.PositionChefSuperviseur, e.Position)
			assert.Equal(t, uint(3), *e.ManagerID)
			assert.Nil(t, e.SupervisorID)
			return nil
		})
		deps.redismock.ExpectDel(employee.ManagerOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, 42, req)

		assert.NoError(t, err)
		assert.Equal(t, "chef_superviseur", resp.Position)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClearReferences(ctx, uint(5)).Return(nil)
		deps.repo.EXPECT().Delete(ctx, uint(5)).Return(nil)
		deps.redismock.ExpectDel(employee.ManagerOptionsKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, 5))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClearReferences(ctx, uint(5)).Return(nil)
		deps.repo.EXPECT().Delete(ctx, uint(5)).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 5)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ManagerOptions(t *testing.T) {
	ctx := context.Background()
	opts := []employee.ManagerOption{{ID: 3, FirstName: "Adama", LastName: "Keita"}}
	raw, _ := json.Marshal(opts)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redismock.ExpectGet(employee.ManagerOptionsKey).SetVal(string(raw))

		got, err := deps.service.ManagerOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
	})

	t.Run("cache miss fills redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redismock.ExpectGet(employee.ManagerOptionsKey).RedisNil()
		deps.repo.EXPECT().ManagerOptions(ctx).Return(opts, nil)
		deps.redismock.ExpectSet(employee.ManagerOptionsKey, raw, time.Hour).SetVal("OK")

		got, err := deps.service.ManagerOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redismock.ExpectGet(employee.ManagerOptionsKey).RedisNil()
		deps.repo.EXPECT().ManagerOptions(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.ManagerOptions(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestEmployeeService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	deps.repo.EXPECT().List(ctx, 1, 15).Return([]employee.Employee{
		{
			ID:        9,
			FirstName: "Awa",
			LastName:  "Traoré",
			Position:  domain.PositionEmployer,
			User:      &employee.Account{ID: 4, Username: "traore@76123456.org"},
			Manager:   &employee.EmployeeRef{ID: 3, FirstName: "Adama", LastName: "Keita"},
		},
	}, int64(1), nil)
	deps.redismock.ExpectGet(employee.ManagerOptionsKey).SetVal(`[{"id":3,"first_name":"Adama","last_name":"Keita"}]`)

	resp, total, err := deps.service.List(ctx, 1, 15)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "traore@76123456.org", *resp.Employees[0].Username)
	assert.Equal(t, "Adama", resp.Employees[0].Manager.FirstName)
	assert.Len(t, resp.Managers, 1)
}
