package report_test

import (
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/report"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func TestViewer_CanView(t *testing.T) {
	sales := strPtr("Ventes")

	employer := report.Viewer{UserID: 10, EmployeeID: 100, Position: domain.PositionEmployer, Department: sales}
	superviseur := report.Viewer{UserID: 20, EmployeeID: 200, Position: domain.PositionSuperviseur, Department: sales}
	chef := report.Viewer{UserID: 30, EmployeeID: 300, Position: domain.PositionChefSuperviseur, Department: sales}
	manager := report.Viewer{UserID: 40, EmployeeID: 400, Position: domain.PositionManager}

	supervised := &report.Respondent{UserID: 11, EmployeeID: 101, SupervisorID: uintPtr(200), Department: sales}
	stranger := &report.Respondent{UserID: 12, EmployeeID: 102, SupervisorID: uintPtr(999), Department: strPtr("Logistique")}
	noDepartment := &report.Respondent{UserID: 13, EmployeeID: 103}

	tests := []struct {
		name   string
		viewer report.Viewer
		userID uint
		resp   *report.Respondent
		want   bool
	}{
		{"employer sees own", employer, 10, nil, true},
		{"employer cannot see colleague", employer, 11, supervised, false},
		{"superviseur sees own", superviseur, 20, nil, true},
		{"superviseur sees supervised", superviseur, 11, supervised, true},
		{"superviseur cannot see others", superviseur, 12, stranger, false},
		{"superviseur without profile target", superviseur, 14, nil, false},
		{"chef sees department", chef, 11, supervised, true},
		{"chef cannot see other department", chef, 12, stranger, false},
		{"chef cannot see null department", chef, 13, noDepartment, false},
		{"manager sees all", manager, 12, stranger, true},
		{"unknown position", report.Viewer{Position: "admin"}, 11, supervised, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.viewer.CanView(tt.userID, tt.resp))
		})
	}

	t.Run("null departments match", func(t *testing.T) {
		v := report.Viewer{UserID: 30, Position: domain.PositionChefSuperviseur}
		assert.True(t, v.CanView(13, noDepartment))
	})
}

func TestViewer_Scope(t *testing.T) {
	db := dryRun(t)

	find := func(v report.Viewer) *gorm.Statement {
		var rows []report.Response
		return db.Table("questionnaire_responses AS r").Scopes(v.Scope("r.respondent_id")).Find(&rows).Statement
	}

	t.Run("employer", func(t *testing.T) {
		stmt := find(report.Viewer{UserID: 10, Position: domain.PositionEmployer})
		assert.Contains(t, stmt.SQL.String(), "r.respondent_id = $1")
		assert.Equal(t, []any{uint(10)}, stmt.Vars)
	})

	t.Run("superviseur includes own and supervised", func(t *testing.T) {
		stmt := find(report.Viewer{UserID: 20, Position: domain.PositionSuperviseur, SupervisedUserIDs: []uint{11, 15}})
		assert.Contains(t, stmt.SQL.String(), "r.respondent_id IN ($1,$2,$3)")
		assert.Equal(t, []any{uint(20), uint(11), uint(15)}, stmt.Vars)
	})

	t.Run("chef filters by department", func(t *testing.T) {
		stmt := find(report.Viewer{UserID: 30, Position: domain.PositionChefSuperviseur, Department: strPtr("Ventes")})
		sql := stmt.SQL.String()
		assert.Contains(t, sql, "r.respondent_id IN (SELECT user_id FROM")
		assert.Contains(t, sql, "department = $1")
		assert.Equal(t, []any{"Ventes"}, stmt.Vars)
	})

	t.Run("manager is unfiltered", func(t *testing.T) {
		stmt := find(report.Viewer{UserID: 40, Position: domain.PositionManager})
		assert.NotContains(t, stmt.SQL.String(), "WHERE")
	})

	t.Run("unknown position sees nothing", func(t *testing.T) {
		stmt := find(report.Viewer{UserID: 50})
		assert.Contains(t, stmt.SQL.String(), "1 = 0")
	})

	t.Run("team scope drops own rows", func(t *testing.T) {
		var rows []report.Response
		v := report.Viewer{UserID: 20, Position: domain.PositionSuperviseur, SupervisedUserIDs: []uint{11}}
		stmt := db.Table("questionnaire_responses AS r").Scopes(v.TeamScope("r.respondent_id")).Find(&rows).Statement
		assert.Equal(t, []any{uint(11)}, stmt.Vars)

		empty := report.Viewer{UserID: 20, Position: domain.PositionSuperviseur}
		stmt = db.Table("questionnaire_responses AS r").Scopes(empty.TeamScope("r.respondent_id")).Find(&rows).Statement
		assert.Contains(t, stmt.SQL.String(), "1 = 0")
	})
}
