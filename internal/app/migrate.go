package app

import (
	"context"
	"fmt"

	"github.com/KATBlackCoder/rapportflow/internal/employee"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"
	"github.com/KATBlackCoder/rapportflow/internal/notification"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	"github.com/KATBlackCoder/rapportflow/internal/report"
	"github.com/KATBlackCoder/rapportflow/internal/shared/counter"
	"github.com/KATBlackCoder/rapportflow/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type foreignKey struct {
	table    string
	name     string
	column   string
	ref      string
	onDelete string
}

var foreignKeys = []foreignKey{
	{"employees", "fk_employees_user", "user_id", "users", "SET NULL"},
	{"employees", "fk_employees_manager", "manager_id", "employees", "SET NULL"},
	{"employees", "fk_employees_supervisor", "supervisor_id", "employees", "SET NULL"},
	{"questionnaires", "fk_questionnaires_creator", "created_by", "users", "SET NULL"},
	{"questions", "fk_questions_questionnaire", "questionnaire_id", "questionnaires", "CASCADE"},
	{"questions", "fk_questions_conditional", "conditional_question_id", "questions", "SET NULL"},
	{"questionnaire_responses", "fk_responses_questionnaire", "questionnaire_id", "questionnaires", "CASCADE"},
	{"questionnaire_responses", "fk_responses_question", "question_id", "questions", "CASCADE"},
	{"questionnaire_responses", "fk_responses_respondent", "respondent_id", "users", "CASCADE"},
	{"questionnaire_responses", "fk_responses_reviewer", "reviewed_by", "users", "SET NULL"},
	{"notifications", "fk_notifications_user", "user_id", "users", "CASCADE"},
}

// Models lists every table the services read or write, parents first.
func Models() []any {
	return []any{
		&user.User{},
		&employee.Employee{},
		&questionnaire.Questionnaire{},
		&questionnaire.Question{},
		&report.Response{},
		&notification.Notification{},
		&kafka.OutboxEvent{},
		&counter.Counter{},
	}
}

// Migrate creates or updates the schema. Foreign keys are added by name so
// their delete rules are explicit; sqlite keeps the plain columns.
func Migrate(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	log := logger.Named("app.migrate")

	mdb := db.WithContext(ctx).Session(&gorm.Session{})
	mdb.Config.DisableForeignKeyConstraintWhenMigrating = true
	if err := mdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("schema migrated", zap.Int("models", len(Models())))

	if db.Dialector.Name() != "postgres" {
		log.Warn("foreign keys skipped", zap.String("dialect", db.Dialector.Name()))
		return nil
	}

	for _, fk := range foreignKeys {
		if err := db.WithContext(ctx).Exec(addForeignKeySQL(fk)).Error; err != nil {
			return fmt.Errorf("add %s: %w", fk.name, err)
		}
	}
	log.Info("foreign keys ensured", zap.Int("count", len(foreignKeys)))
	return nil
}

func addForeignKeySQL(fk foreignKey) string {
	return fmt.Sprintf(`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[2]s') THEN
ALTER TABLE %[1]s ADD CONSTRAINT %[2]s FOREIGN KEY (%[3]s) REFERENCES %[4]s (id) ON DELETE %[5]s;
END IF;
END $$`, fk.table, fk.name, fk.column, fk.ref, fk.onDelete)
}
