package dashboard

import "time"

// Stats only carries the counters relevant to the requester's position.
type Stats struct {
	MyReportsCount           *int64 `json:"my_reports_count,omitempty"`
	PendingCorrectionsCount  *int64 `json:"pending_corrections_count,omitempty"`
	SupervisedEmployeesCount *int64 `json:"supervised_employees_count,omitempty"`
	TeamReportsCount         *int64 `json:"team_reports_count,omitempty"`
	SupervisorsCount         *int64 `json:"supervisors_count,omitempty"`
	EmployeesCount           *int64 `json:"employees_count,omitempty"`
	QuestionnairesCount      *int64 `json:"questionnaires_count,omitempty"`
	TotalReportsCount        *int64 `json:"total_reports_count,omitempty"`
}

type RecentReport struct {
	ResponseID         uint       `json:"id"`
	QuestionnaireID    uint       `json:"questionnaire_id"`
	QuestionnaireTitle string     `json:"questionnaire_title"`
	RowIdentifier      *string    `json:"row_identifier"`
	RespondentID       uint       `json:"respondent_id"`
	RespondentName     *string    `json:"respondent_name"`
	SubmittedAt        *time.Time `json:"submitted_at"`
}

type PendingCorrection struct {
	ResponseID         uint       `json:"response_id"`
	QuestionnaireID    uint       `json:"questionnaire_id"`
	QuestionnaireTitle string     `json:"questionnaire_title"`
	RowIdentifier      *string    `json:"row_identifier"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
}

type LastReport struct {
	QuestionnaireTitle string     `json:"questionnaire_title"`
	SubmittedAt        *time.Time `json:"submitted_at"`
}

type Flags struct {
	CanAccessQuestionnaires bool `json:"can_access_questionnaires"`
	CanAccessEmployees      bool `json:"can_access_employees"`
	CanExportReports        bool `json:"can_export_reports"`
}

type Response struct {
	Stats                        Stats               `json:"stats"`
	RecentReports                []RecentReport      `json:"recent_reports"`
	PendingCorrections           []PendingCorrection `json:"pending_corrections"`
	LastReport                   *LastReport         `json:"last_report"`
	AvailableQuestionnairesCount int64               `json:"available_questionnaires_count"`
	Flags
}

// EmployeeFilter narrows an employee count. A nil Department with
// AllDepartments unset matches employees without a department.
type EmployeeFilter struct {
	AllDepartments bool
	Department     *string
	Position       *string
}
