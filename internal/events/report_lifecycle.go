package events

import "time"

const ReportLifecycleTopic = "rapportflow.report.lifecycle.v1"

const (
	ReportSubmitted             = "report.submitted"
	ReportReturnedForCorrection = "report.returned_for_correction"
	ReportResubmitted           = "report.resubmitted"
)

// ReportLifecycleEvent describes one logical report changing state. The
// report is identified by its questionnaire, respondent and row.
type ReportLifecycleEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	QuestionnaireID  uint      `json:"questionnaire_id"`
	RespondentID     uint      `json:"respondent_id"`
	RowIdentifier    *string   `json:"row_identifier,omitempty"`
	ResponseIDs      []uint    `json:"response_ids"`
	ReviewerID       *uint     `json:"reviewer_id,omitempty"`
	CorrectionReason *string   `json:"correction_reason,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}
