package report

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
)

// Response is one answer row. Rows sharing questionnaire, respondent and
// row identifier form one logical report.
type Response struct {
	ID               uint                  `gorm:"column:id;primaryKey"`
	QuestionnaireID  uint                  `gorm:"column:questionnaire_id;not null;index:idx_responses_questionnaire_id"`
	QuestionID       uint                  `gorm:"column:question_id;not null;index:idx_responses_question_id"`
	RespondentID     uint                  `gorm:"column:respondent_id;not null;index:idx_responses_respondent_id"`
	RowIdentifier    *string               `gorm:"column:row_identifier;type:varchar(255);index:idx_responses_row_identifier"`
	Answer           Answer                `gorm:"column:response;type:json;not null"`
	Status           domain.ResponseStatus `gorm:"column:status;type:varchar(30);not null;default:submitted;index:idx_responses_status"`
	SubmittedAt      *time.Time            `gorm:"column:submitted_at"`
	ReviewedBy       *uint                 `gorm:"column:reviewed_by"`
	ReviewedAt       *time.Time            `gorm:"column:reviewed_at"`
	CorrectionReason *string               `gorm:"column:correction_reason;type:text"`
	CreatedAt        time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time             `gorm:"column:updated_at;autoUpdateTime"`

	Question *questionnaire.Question `gorm:"foreignKey:QuestionID;references:ID"`
}

func (Response) TableName() string {
	return "questionnaire_responses"
}

// Key returns the logical report the row belongs to.
func (r Response) Key() ReportKey {
	return ReportKey{
		QuestionnaireID: r.QuestionnaireID,
		RespondentID:    r.RespondentID,
		RowIdentifier:   r.RowIdentifier,
	}
}

type ReportKey struct {
	QuestionnaireID uint
	RespondentID    uint
	RowIdentifier   *string
}

// Answer holds the raw JSON value given for a question.
type Answer []byte

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	*a = append((*a)[:0], data...)
	return nil
}

func (a Answer) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return string(a), nil
}

func (a *Answer) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = nil
	case []byte:
		*a = append((*a)[:0], v...)
	case string:
		*a = Answer(v)
	default:
		return fmt.Errorf("unsupported response value %T", src)
	}
	return nil
}
