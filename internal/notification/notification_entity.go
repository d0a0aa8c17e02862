package notification

import "time"

const (
	KindReportSubmitted   = "report_submitted"
	KindReportReturned    = "report_returned_for_correction"
	KindReportResubmitted = "report_resubmitted"
	KindWelcome           = "welcome"
)

type Notification struct {
	ID              uint       `gorm:"column:id;primaryKey"`
	UserID          uint       `gorm:"column:user_id;not null;index:idx_notifications_user_read"`
	Kind            string     `gorm:"column:kind;type:varchar(50);not null"`
	Title           string     `gorm:"column:title;type:varchar(255);not null"`
	Body            string     `gorm:"column:body;type:text;not null"`
	QuestionnaireID *uint      `gorm:"column:questionnaire_id"`
	ResponseID      *uint      `gorm:"column:response_id"`
	ReadAt          *time.Time `gorm:"column:read_at;index:idx_notifications_user_read"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
