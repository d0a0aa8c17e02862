package employee

import "github.com/shopspring/decimal"

// EmployeeRequest is the full employee form used by create and update.
type EmployeeRequest struct {
	EmployeeID   string           `json:"employee_id" binding:"required,max=50"`
	FirstName    string           `json:"first_name" binding:"required,max=255"`
	LastName     string           `json:"last_name" binding:"required,max=255"`
	Email        *string          `json:"email" binding:"omitempty,email,max=255"`
	Phone        string           `json:"phone" binding:"required,phone8"`
	Position     string           `json:"position" binding:"required,oneof=employer superviseur chef_superviseur manager"`
	Department   *string          `json:"department" binding:"omitempty,max=255"`
	ManagerID    *uint            `json:"manager_id" binding:"omitempty,min=1"`
	SupervisorID *uint            `json:"supervisor_id" binding:"omitempty,min=1"`
	Salary       *decimal.Decimal `json:"salary"`
	HireDate     *string          `json:"hire_date" binding:"omitempty,notfuture"`
	Status       string           `json:"status" binding:"required,oneof=active inactive suspended terminated"`
	UserID       *uint            `json:"user_id" binding:"omitempty,min=1"`
}

type ManagerOption struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type EmployeeResponse struct {
	ID              uint             `json:"id"`
	UserID          *uint            `json:"user_id"`
	Username        *string          `json:"username"`
	EmployeeID      string           `json:"employee_id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	DisplayLastName string           `json:"display_last_name"`
	Email           *string          `json:"email"`
	Phone           string           `json:"phone"`
	Position        string           `json:"position"`
	PositionLabel   string           `json:"position_label"`
	Department      *string          `json:"department"`
	ManagerID       *uint            `json:"manager_id"`
	Manager         *ManagerOption   `json:"manager,omitempty"`
	SupervisorID    *uint            `json:"supervisor_id"`
	Salary          *decimal.Decimal `json:"salary"`
	HireDate        *string          `json:"hire_date"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Managers  []ManagerOption    `json:"managers"`
}
