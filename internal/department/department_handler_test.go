package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/department"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	ListFn func(ctx context.Context) ([]department.DepartmentOption, error)
}

func (f *fakeDepartmentService) List(ctx context.Context) ([]department.DepartmentOption, error) {
	return f.ListFn(ctx)
}

type apiEnvelope struct {
	Ok   bool                          `json:"ok"`
	Data []department.DepartmentOption `json:"data"`
}

func setupRouter(svc department.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/departments", department.NewHandler(svc).List)
	return r
}

func TestDepartmentHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := setupRouter(&fakeDepartmentService{
			ListFn: func(ctx context.Context) ([]department.DepartmentOption, error) {
				return []department.DepartmentOption{{Name: "Commercial"}}, nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, "Commercial", body.Data[0].Name)
	})

	t.Run("service error", func(t *testing.T) {
		r := setupRouter(&fakeDepartmentService{
			ListFn: func(ctx context.Context) ([]department.DepartmentOption, error) {
				return nil, errors.New("boom")
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
