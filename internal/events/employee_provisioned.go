package events

import "time"

const EmployeeLifecycleTopic = "rapportflow.employee.lifecycle.v1"

const EmployeeProvisioned = "employee.provisioned"

type EmployeeProvisionedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	Position     string    `json:"position"`
	Department   *string   `json:"department,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
