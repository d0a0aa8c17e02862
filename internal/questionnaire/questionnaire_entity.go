package questionnaire

import (
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
)

type Questionnaire struct {
	ID          uint                       `gorm:"column:id;primaryKey"`
	Title       string                     `gorm:"column:title;type:varchar(255);not null"`
	Description *string                    `gorm:"column:description;type:text"`
	Status      domain.QuestionnaireStatus `gorm:"column:status;type:varchar(20);not null;index:idx_questionnaires_status"`
	TargetType  domain.TargetType          `gorm:"column:target_type;type:varchar(20);not null"`
	CreatedBy   *uint                      `gorm:"column:created_by"`
	CreatedAt   time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                  `gorm:"column:updated_at;autoUpdateTime"`

	Creator   *Creator   `gorm:"foreignKey:CreatedBy;references:ID"`
	Questions []Question `gorm:"foreignKey:QuestionnaireID;references:ID"`
}

type Question struct {
	ID                    uint                `gorm:"column:id;primaryKey"`
	QuestionnaireID       uint                `gorm:"column:questionnaire_id;not null;index:idx_questions_questionnaire_id"`
	Type                  domain.QuestionType `gorm:"column:type;type:varchar(20);not null"`
	Question              string              `gorm:"column:question;type:text;not null"`
	Required              bool                `gorm:"column:required;not null;default:false"`
	Order                 int                 `gorm:"column:order;not null;default:0"`
	Options               OptionSet           `gorm:"column:options;type:json"`
	ConditionalQuestionID *uint               `gorm:"column:conditional_question_id"`
	ConditionalValue      *string             `gorm:"column:conditional_value;type:varchar(255)"`
	CreatedAt             time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time           `gorm:"column:updated_at;autoUpdateTime"`

	ConditionalQuestion *QuestionRef `gorm:"foreignKey:ConditionalQuestionID;references:ID"`
}

// QuestionRef is the trigger question a conditional question points at.
type QuestionRef struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Question string `gorm:"column:question"`
}

func (QuestionRef) TableName() string {
	return "questions"
}

type Creator struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (Creator) TableName() string {
	return "users"
}
