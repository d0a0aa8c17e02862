package report

import "time"

type AnswerInput struct {
	QuestionID    uint    `json:"question_id" binding:"required"`
	RowIdentifier *string `json:"row_identifier" binding:"omitempty,max=255"`
	Response      Answer  `json:"response" binding:"required"`
}

// SubmitRequest is used by both the first submission and a correction.
type SubmitRequest struct {
	QuestionnaireID uint          `json:"questionnaire_id" binding:"required"`
	Responses       []AnswerInput `json:"responses" binding:"required,min=1,dive"`
}

type ReturnRequest struct {
	CorrectionReason string `json:"correction_reason" binding:"required,max=1000"`
	ResponseIDs      []uint `json:"response_ids" binding:"required,min=1,dive,required"`
}

type Filter struct {
	QuestionnaireID *uint
	RespondentID    *uint
	Status          *string
	DateFrom        *time.Time
	DateTo          *time.Time
}

type MenuOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ReportGroup is one listed logical report.
type ReportGroup struct {
	QuestionnaireID    uint       `json:"questionnaire_id"`
	QuestionnaireTitle string     `json:"questionnaire_title"`
	RespondentID       uint       `json:"respondent_id,omitempty"`
	RespondentName     string     `json:"respondent_name,omitempty"`
	RowIdentifier      *string    `json:"row_identifier"`
	Status             string     `json:"status"`
	SubmittedAt        *time.Time `json:"submitted_at"`
	CorrectionReason   *string    `json:"correction_reason,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	ResponseID         uint       `json:"response_id"`
	AnswersCount       int64      `json:"answers_count"`
}

type AnswerItem struct {
	ID            uint       `json:"id"`
	QuestionID    uint       `json:"question_id"`
	Question      string     `json:"question"`
	QuestionType  string     `json:"question_type"`
	Order         int        `json:"order"`
	RowIdentifier *string    `json:"row_identifier"`
	Response      Answer     `json:"response"`
	Status        string     `json:"status"`
	SubmittedAt   *time.Time `json:"submitted_at"`
}

type ReportDetail struct {
	ResponseID         uint         `json:"response_id"`
	QuestionnaireID    uint         `json:"questionnaire_id"`
	QuestionnaireTitle string       `json:"questionnaire_title"`
	RespondentID       uint         `json:"respondent_id"`
	RowIdentifier      *string      `json:"row_identifier"`
	Status             string       `json:"status"`
	SubmittedAt        *time.Time   `json:"submitted_at"`
	ReviewedBy         *uint        `json:"reviewed_by"`
	ReviewedAt         *time.Time   `json:"reviewed_at"`
	CorrectionReason   *string      `json:"correction_reason"`
	Responses          []AnswerItem `json:"responses"`
	CanExport          bool         `json:"can_export"`
}

type SubmitResult struct {
	QuestionnaireID uint      `json:"questionnaire_id"`
	ResponseIDs     []uint    `json:"response_ids"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type ReturnResult struct {
	ResponseIDs []uint    `json:"response_ids"`
	ReviewedAt  time.Time `json:"reviewed_at"`
}

type RespondentOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AnalysisResponse struct {
	Reports     []ReportGroup      `json:"reports"`
	Respondents []RespondentOption `json:"respondents"`
	CanExport   bool               `json:"can_export"`
}

// ExportRow is one raw answer with its report context.
type ExportRow struct {
	ResponseID         uint       `json:"response_id"`
	QuestionnaireID    uint       `json:"questionnaire_id"`
	QuestionnaireTitle string     `json:"questionnaire_title"`
	QuestionID         uint       `json:"question_id"`
	Question           string     `json:"question"`
	RespondentID       uint       `json:"respondent_id"`
	RespondentName     string     `json:"respondent_name"`
	RowIdentifier      *string    `json:"row_identifier"`
	Response           Answer     `json:"response"`
	Status             string     `json:"status"`
	SubmittedAt        *time.Time `json:"submitted_at"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
	CorrectionReason   *string    `json:"correction_reason"`
}
