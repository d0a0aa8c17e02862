package dashboard

import (
	"context"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/report"
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	recentReportsLimit      = 8
	pendingCorrectionsLimit = 5
	activityWindow          = 30 * 24 * time.Hour
)

// Enforcer is satisfied by rbac.Service.
type Enforcer interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

// ViewerLoader is satisfied by report.Repository.
type ViewerLoader interface {
	Viewer(ctx context.Context, userID uint) (*report.Viewer, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, userID uint) (Response, error)
}

type service struct {
	repo     Repository
	viewers  ViewerLoader
	enforcer Enforcer
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, viewers ViewerLoader, enforcer Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:     repo,
		viewers:  viewers,
		enforcer: enforcer,
		now:      time.Now,
		logger:   l,
	}
}

// Empty is the dashboard of an account without an employee profile.
func Empty() Response {
	return Response{
		RecentReports:      []RecentReport{},
		PendingCorrections: []PendingCorrection{},
	}
}

func (s *service) Get(ctx context.Context, userID uint) (Response, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.Uint("user_id", userID))
	l.Debug("dashboard requested", zap.String("request_id", contextutil.GetRequestID(ctx)))

	v, err := s.viewers.Viewer(ctx, userID)
	if err != nil {
		l.Error("dashboard load viewer failed", zap.Error(err))
		return Response{}, err
	}
	if v == nil {
		return Empty(), nil
	}

	since := s.now().Add(-activityWindow)
	resp := Empty()

	if resp.Stats, err = s.stats(ctx, *v, since); err != nil {
		l.Error("dashboard stats failed", zap.Error(err))
		return Response{}, err
	}

	recent, err := s.repo.RecentReports(ctx, *v, recentReportsLimit)
	if err != nil {
		l.Error("dashboard recent reports failed", zap.Error(err))
		return Response{}, err
	}
	if recent != nil {
		resp.RecentReports = recent
	}

	pending, err := s.repo.PendingCorrections(ctx, correctionsAudience(*v), pendingCorrectionsLimit)
	if err != nil {
		l.Error("dashboard pending corrections failed", zap.Error(err))
		return Response{}, err
	}
	if pending != nil {
		resp.PendingCorrections = pending
	}

	if resp.LastReport, err = s.repo.LastReport(ctx, userID); err != nil {
		l.Error("dashboard last report failed", zap.Error(err))
		return Response{}, err
	}
	if resp.AvailableQuestionnairesCount, err = s.repo.CountAvailableQuestionnaires(ctx, userID, since); err != nil {
		l.Error("dashboard available questionnaires failed", zap.Error(err))
		return Response{}, err
	}

	resp.Flags = Flags{
		CanAccessQuestionnaires: s.allowed(ctx, userID, domain.ResourceQuestionnaire, domain.ActionRead),
		CanAccessEmployees:      s.allowed(ctx, userID, domain.ResourceEmployee, domain.ActionRead),
		CanExportReports:        s.allowed(ctx, userID, domain.ResourceReport, domain.ActionExport),
	}
	return resp, nil
}

// correctionsAudience narrows respondents to themselves. Chefs and managers
// keep their full scope.
func correctionsAudience(v report.Viewer) report.Viewer {
	switch v.Position {
	case domain.PositionEmployer, domain.PositionSuperviseur:
		return report.Viewer{UserID: v.UserID, EmployeeID: v.EmployeeID, Position: domain.PositionEmployer}
	default:
		return v
	}
}

func (s *service) stats(ctx context.Context, v report.Viewer, since time.Time) (Stats, error) {
	var st Stats
	count := func(dst **int64, fn func() (int64, error)) error {
		n, err := fn()
		if err != nil {
			return err
		}
		*dst = &n
		return nil
	}

	var steps []func() error
	pending := func() error {
		return count(&st.PendingCorrectionsCount, func() (int64, error) {
			return s.repo.CountPendingCorrections(ctx, correctionsAudience(v))
		})
	}
	published := func() error {
		return count(&st.QuestionnairesCount, func() (int64, error) {
			return s.repo.CountPublishedQuestionnaires(ctx)
		})
	}
	reports := func() error {
		return count(&st.TotalReportsCount, func() (int64, error) {
			return s.repo.CountReports(ctx, v)
		})
	}

	switch v.Position {
	case domain.PositionEmployer, domain.PositionSuperviseur:
		steps = append(steps,
			func() error {
				return count(&st.MyReportsCount, func() (int64, error) {
					return s.repo.CountOwnReports(ctx, v.UserID)
				})
			},
			pending,
		)
		if v.Position == domain.PositionSuperviseur {
			supervised := int64(len(v.SupervisedUserIDs))
			st.SupervisedEmployeesCount = &supervised
			steps = append(steps, func() error {
				if supervised == 0 {
					zero := int64(0)
					st.TeamReportsCount = &zero
					return nil
				}
				return count(&st.TeamReportsCount, func() (int64, error) {
					return s.repo.CountTeamReports(ctx, v, since)
				})
			})
		}

	case domain.PositionChefSuperviseur:
		superviseur := string(domain.PositionSuperviseur)
		steps = append(steps,
			func() error {
				return count(&st.SupervisorsCount, func() (int64, error) {
					return s.repo.CountEmployees(ctx, EmployeeFilter{Department: v.Department, Position: &superviseur})
				})
			},
			func() error {
				return count(&st.EmployeesCount, func() (int64, error) {
					return s.repo.CountEmployees(ctx, EmployeeFilter{Department: v.Department})
				})
			},
			published, reports, pending,
		)

	case domain.PositionManager:
		steps = append(steps,
			func() error {
				return count(&st.EmployeesCount, func() (int64, error) {
					return s.repo.CountEmployees(ctx, EmployeeFilter{AllDepartments: true})
				})
			},
			published, reports, pending,
		)
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return Stats{}, err
		}
	}
	return st, nil
}

// allowed reports a policy decision. Enforcement failures count as denied.
func (s *service) allowed(ctx context.Context, userID uint, resource, action string) bool {
	if s.enforcer == nil {
		return false
	}
	ok, err := s.enforcer.Enforce(ctx, domain.EnforceRequest{UserID: userID, Resource: resource, Action: action})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("dashboard flag enforce failed",
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false
	}
	return ok
}
