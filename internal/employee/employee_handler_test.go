package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/employee"
	employeeerrors "github.com/KATBlackCoder/rapportflow/internal/employee/errors"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	ListFn           func(ctx context.Context, page, pageSize int) (employee.ListEmployeesResponse, int64, error)
	ManagerOptionsFn func(ctx context.Context) ([]employee.ManagerOption, error)
	GetByIDFn        func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	CreateFn         func(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn         func(ctx context.Context, id uint, req employee.EmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn         func(ctx context.Context, id uint) error
}

func (f *fakeEmployeeService) List(ctx context.Context, page, pageSize int) (employee.ListEmployeesResponse, int64, error) {
	return f.ListFn(ctx, page, pageSize)
}
func (f *fakeEmployeeService) ManagerOptions(ctx context.Context) ([]employee.ManagerOption, error) {
	return f.ManagerOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(h *employee.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.GET("/employees", h.List)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

const validBody = `{
	"employee_id": "EMP0042",
	"first_name": "Awa",
	"last_name": "Traoré",
	"phone": "76123456",
	"position": "employer",
	"department": "Ventes",
	"supervisor_id": 7,
	"salary": "150000.50",
	"hire_date": "2024-01-15",
	"status": "active"
}`

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "EMP0042", req.EmployeeID)
				assert.Equal(t, uint(7), *req.SupervisorID)
				assert.Equal(t, "150000.5", req.Salary.String())
				return employee.EmployeeResponse{ID: 42, EmployeeID: req.EmployeeID}, nil
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"EMP0042"`)
	})

	t.Run("invalid phone", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))
		body := strings.Replace(validBody, `"76123456"`, `"7612"`, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Phone must be exactly 8 digits")
	})

	t.Run("unknown position", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))
		body := strings.Replace(validBody, `"employer"`, `"director"`, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrPhoneTaken
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	svc := &fakeEmployeeService{
		ListFn: func(_ context.Context, page, pageSize int) (employee.ListEmployeesResponse, int64, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 15, pageSize)
			return employee.ListEmployeesResponse{
				Employees: []employee.EmployeeResponse{{ID: 1}},
				Managers:  []employee.ManagerOption{{ID: 3, FirstName: "Adama"}},
			}, 1, nil
		},
	}
	r := setupRouter(employee.NewHandler(svc))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"managers":[{"id":3`)
	assert.Contains(t, w.Body.String(), `"pageSize":15`)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/employees/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(_ context.Context, id uint) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(8), id)
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/employees/8", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteFn: func(_ context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			return nil
		},
	}
	r := setupRouter(employee.NewHandler(svc))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/employees/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
