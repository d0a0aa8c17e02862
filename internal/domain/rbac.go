package domain

// Resources and actions checked by the policy enforcer.
const (
	ResourceQuestionnaire = "questionnaire"
	ResourceEmployee      = "employee"
	ResourceReport        = "report"

	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionAnalyze = "analyze"
	ActionReview  = "review"
	ActionExport  = "export"
)

type EnforceRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyRule struct {
	Position Position `json:"position" yaml:"position"`
	Resource string   `json:"resource" yaml:"resource"`
	Action   string   `json:"action" yaml:"action"`
}
