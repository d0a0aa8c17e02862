package rbac

import (
	"context"
	"errors"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type mockRepo struct {
	positions map[uint]domain.Position
	err       error
}

func (m *mockRepo) FindPositionByUserID(ctx context.Context, userID uint) (*domain.Position, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.positions[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	e, rules, err := infra.NewDefaultEnforcer()
	assert.NoError(t, err)
	return NewService(repo, e, rules)
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &mockRepo{positions: map[uint]domain.Position{
		1: domain.PositionEmployer,
		2: domain.PositionSuperviseur,
		3: domain.PositionChefSuperviseur,
		4: domain.PositionManager,
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   uint
		resource string
		action   string
		want     bool
	}{
		{"manager creates questionnaire", 4, domain.ResourceQuestionnaire, domain.ActionCreate, true},
		{"chef deletes questionnaire", 3, domain.ResourceQuestionnaire, domain.ActionDelete, true},
		{"chef reads employees", 3, domain.ResourceEmployee, domain.ActionRead, true},
		{"superviseur lists questionnaires", 2, domain.ResourceQuestionnaire, domain.ActionRead, false},
		{"employer updates questionnaire", 1, domain.ResourceQuestionnaire, domain.ActionUpdate, false},
		{"employer reads employees", 1, domain.ResourceEmployee, domain.ActionRead, false},
		{"superviseur reviews reports", 2, domain.ResourceReport, domain.ActionReview, true},
		{"superviseur cannot export", 2, domain.ResourceReport, domain.ActionExport, false},
		{"employer cannot analyze", 1, domain.ResourceReport, domain.ActionAnalyze, false},
		{"restore is never granted", 4, domain.ResourceQuestionnaire, "restore", false},
		{"force delete is never granted", 4, domain.ResourceEmployee, "forceDelete", false},
		{"no employee profile", 99, domain.ResourceQuestionnaire, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: tt.userID, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_EnforceRepoError(t *testing.T) {
	svc := newTestService(t, &mockRepo{err: errors.New("db down")})

	allowed, err := svc.Enforce(context.Background(), domain.EnforceRequest{UserID: 1, Resource: "employee", Action: "read"})

	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newTestService(t, &mockRepo{positions: map[uint]domain.Position{2: domain.PositionSuperviseur}})

	resp, err := svc.Permissions(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.PositionSuperviseur, *resp.Position)
	assert.Len(t, resp.Permissions, 2)

	resp, err = svc.Permissions(context.Background(), 50)
	assert.NoError(t, err)
	assert.Nil(t, resp.Position)
	assert.Empty(t, resp.Permissions)
}
