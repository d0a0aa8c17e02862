package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/dashboard"
	dashboardMock "github.com/KATBlackCoder/rapportflow/internal/dashboard/mock"
	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/report"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service  dashboard.Service
	repo     *dashboardMock.MockRepository
	viewers  *dashboardMock.MockViewerLoader
	enforcer *dashboardMock.MockEnforcer
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := dashboardMock.NewMockRepository(ctrl)
	viewers := dashboardMock.NewMockViewerLoader(ctrl)
	enforcer := dashboardMock.NewMockEnforcer(ctrl)

	return &serviceDeps{
		service:  dashboard.NewService(repo, viewers, enforcer),
		repo:     repo,
		viewers:  viewers,
		enforcer: enforcer,
	}
}

// expectLists wires the list queries shared by every position.
func expectLists(deps *serviceDeps, userID uint) {
	deps.repo.EXPECT().RecentReports(gomock.Any(), gomock.Any(), 8).Return(nil, nil)
	deps.repo.EXPECT().PendingCorrections(gomock.Any(), gomock.Any(), 5).Return(nil, nil)
	deps.repo.EXPECT().LastReport(gomock.Any(), userID).Return(nil, nil)
	deps.repo.EXPECT().CountAvailableQuestionnaires(gomock.Any(), userID, gomock.Any()).Return(int64(2), nil)
}

func expectFlags(deps *serviceDeps, userID uint, questionnaires, employees, export bool) {
	deps.enforcer.EXPECT().Enforce(gomock.Any(), domain.EnforceRequest{UserID: userID, Resource: domain.ResourceQuestionnaire, Action: domain.ActionRead}).Return(questionnaires, nil)
	deps.enforcer.EXPECT().Enforce(gomock.Any(), domain.EnforceRequest{UserID: userID, Resource: domain.ResourceEmployee, Action: domain.ActionRead}).Return(employees, nil)
	deps.enforcer.EXPECT().Enforce(gomock.Any(), domain.EnforceRequest{UserID: userID, Resource: domain.ResourceReport, Action: domain.ActionExport}).Return(export, nil)
}

func TestDashboardService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("no employee gets an empty dashboard", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(1)).Return(nil, nil)

		resp, err := deps.service.Get(ctx, 1)

		assert.NoError(t, err)
		assert.Empty(t, resp.RecentReports)
		assert.NotNil(t, resp.RecentReports)
		assert.Nil(t, resp.LastReport)
		assert.False(t, resp.CanExportReports)
		assert.Nil(t, resp.Stats.MyReportsCount)
	})

	t.Run("employer sees own counters only", func(t *testing.T) {
		deps := setupServiceTest(t)
		v := &report.Viewer{UserID: 5, EmployeeID: 50, Position: domain.PositionEmployer}
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(5)).Return(v, nil)
		deps.repo.EXPECT().CountOwnReports(gomock.Any(), uint(5)).Return(int64(4), nil)
		deps.repo.EXPECT().CountPendingCorrections(gomock.Any(), *v).Return(int64(1), nil)
		expectLists(deps, 5)
		expectFlags(deps, 5, false, false, false)

		resp, err := deps.service.Get(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), *resp.Stats.MyReportsCount)
		assert.Equal(t, int64(1), *resp.Stats.PendingCorrectionsCount)
		assert.Nil(t, resp.Stats.EmployeesCount)
		assert.Equal(t, int64(2), resp.AvailableQuestionnairesCount)
	})

	t.Run("superviseur without team skips the team query", func(t *testing.T) {
		deps := setupServiceTest(t)
		v := &report.Viewer{UserID: 20, EmployeeID: 200, Position: domain.PositionSuperviseur}
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(20)).Return(v, nil)
		deps.repo.EXPECT().CountOwnReports(gomock.Any(), uint(20)).Return(int64(0), nil)
		deps.repo.EXPECT().CountPendingCorrections(gomock.Any(), report.Viewer{UserID: 20, EmployeeID: 200, Position: domain.PositionEmployer}).Return(int64(0), nil)
		expectLists(deps, 20)
		expectFlags(deps, 20, false, false, false)

		resp, err := deps.service.Get(ctx, 20)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), *resp.Stats.SupervisedEmployeesCount)
		assert.Equal(t, int64(0), *resp.Stats.TeamReportsCount)
	})

	t.Run("superviseur counts team reports", func(t *testing.T) {
		deps := setupServiceTest(t)
		v := &report.Viewer{UserID: 20, EmployeeID: 200, Position: domain.PositionSuperviseur, SupervisedUserIDs: []uint{5, 6}}
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(20)).Return(v, nil)
		deps.repo.EXPECT().CountOwnReports(gomock.Any(), uint(20)).Return(int64(1), nil)
		deps.repo.EXPECT().CountPendingCorrections(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().CountTeamReports(gomock.Any(), *v, gomock.Any()).Return(int64(7), nil)
		expectLists(deps, 20)
		expectFlags(deps, 20, false, false, false)

		resp, err := deps.service.Get(ctx, 20)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), *resp.Stats.SupervisedEmployeesCount)
		assert.Equal(t, int64(7), *resp.Stats.TeamReportsCount)
	})

	t.Run("chef counts the department", func(t *testing.T) {
		deps := setupServiceTest(t)
		sales := "Ventes"
		superviseur := "superviseur"
		v := &report.Viewer{UserID: 30, EmployeeID: 300, Position: domain.PositionChefSuperviseur, Department: &sales}
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(30)).Return(v, nil)
		deps.repo.EXPECT().CountEmployees(gomock.Any(), dashboard.EmployeeFilter{Department: &sales, Position: &superviseur}).Return(int64(2), nil)
		deps.repo.EXPECT().CountEmployees(gomock.Any(), dashboard.EmployeeFilter{Department: &sales}).Return(int64(12), nil)
		deps.repo.EXPECT().CountPublishedQuestionnaires(gomock.Any()).Return(int64(3), nil)
		deps.repo.EXPECT().CountReports(gomock.Any(), *v).Return(int64(40), nil)
		deps.repo.EXPECT().CountPendingCorrections(gomock.Any(), *v).Return(int64(5), nil)
		expectLists(deps, 30)
		expectFlags(deps, 30, true, true, true)

		resp, err := deps.service.Get(ctx, 30)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), *resp.Stats.SupervisorsCount)
		assert.Equal(t, int64(12), *resp.Stats.EmployeesCount)
		assert.Equal(t, int64(40), *resp.Stats.TotalReportsCount)
		assert.Nil(t, resp.Stats.MyReportsCount)
		assert.True(t, resp.CanAccessQuestionnaires)
		assert.True(t, resp.CanExportReports)
	})

	t.Run("enforce failure denies the flag", func(t *testing.T) {
		deps := setupServiceTest(t)
		v := &report.Viewer{UserID: 40, Position: domain.PositionManager}
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(40)).Return(v, nil)
		deps.repo.EXPECT().CountEmployees(gomock.Any(), dashboard.EmployeeFilter{AllDepartments: true}).Return(int64(30), nil)
		deps.repo.EXPECT().CountPublishedQuestionnaires(gomock.Any()).Return(int64(3), nil)
		deps.repo.EXPECT().CountReports(gomock.Any(), *v).Return(int64(90), nil)
		deps.repo.EXPECT().CountPendingCorrections(gomock.Any(), *v).Return(int64(5), nil)
		expectLists(deps, 40)
		deps.enforcer.EXPECT().Enforce(gomock.Any(), gomock.Any()).Return(false, errors.New("policy unavailable")).Times(3)

		resp, err := deps.service.Get(ctx, 40)

		assert.NoError(t, err)
		assert.False(t, resp.CanAccessEmployees)
	})

	t.Run("stat failure aborts", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.viewers.EXPECT().Viewer(gomock.Any(), uint(5)).Return(&report.Viewer{UserID: 5, Position: domain.PositionEmployer}, nil)
		deps.repo.EXPECT().CountOwnReports(gomock.Any(), uint(5)).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Get(ctx, 5)

		assert.EqualError(t, err, "db down")
	})
}
