package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/department"
	departmentMock "github.com/KATBlackCoder/rapportflow/internal/department/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   department.NewService(repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()
	opts := []department.DepartmentOption{{Name: "Commercial"}, {Name: "Logistique"}}
	raw, _ := json.Marshal(opts)

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.OptionsKey).SetVal(string(raw))
		deps.repo.EXPECT().DistinctNames(gomock.Any()).Times(0)

		got, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
	})

	t.Run("cache miss reads employees and fills redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.OptionsKey).RedisNil()
		deps.repo.EXPECT().DistinctNames(ctx).Return([]string{"Commercial", "Logistique"}, nil)
		deps.redismock.ExpectSet(department.OptionsKey, raw, 5*time.Minute).SetVal("OK")

		got, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("no departments yet", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.OptionsKey).RedisNil()
		deps.repo.EXPECT().DistinctNames(ctx).Return(nil, nil)
		deps.redismock.ExpectSet(department.OptionsKey, []byte("[]"), 5*time.Minute).SetVal("OK")

		got, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.OptionsKey).RedisNil()
		deps.repo.EXPECT().DistinctNames(ctx).Return(nil, errors.New("db down"))

		got, err := deps.service.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
