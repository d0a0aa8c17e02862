package employee

import (
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           uint                  `gorm:"column:id;primaryKey"`
	UserID       *uint                 `gorm:"column:user_id;uniqueIndex:uq_employees_user_id"`
	EmployeeID   string                `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"`
	FirstName    string                `gorm:"column:first_name;type:varchar(255);not null"`
	LastName     string                `gorm:"column:last_name;type:varchar(255);not null"`
	Email        *string               `gorm:"column:email;type:varchar(255);uniqueIndex:uq_employees_email"`
	Phone        string                `gorm:"column:phone;type:varchar(8);not null;uniqueIndex:uq_employees_phone"`
	Position     domain.Position       `gorm:"column:position;type:varchar(30);not null;index"`
	Department   *string               `gorm:"column:department;type:varchar(255);index"`
	ManagerID    *uint                 `gorm:"column:manager_id;index"`
	SupervisorID *uint                 `gorm:"column:supervisor_id;index"`
	Salary       *decimal.Decimal      `gorm:"column:salary;type:decimal(10,2)"`
	HireDate     *time.Time            `gorm:"column:hire_date;type:date"`
	Status       domain.EmployeeStatus `gorm:"column:status;type:varchar(20);not null;default:active"`
	CreatedAt    time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time             `gorm:"column:updated_at;autoUpdateTime"`

	User    *Account     `gorm:"foreignKey:UserID;references:ID"`
	Manager *EmployeeRef `gorm:"foreignKey:ManagerID;references:ID"`
}

// FullName joins first and last name the way accounts are named.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Account is the login linked to an employee.
type Account struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username"`
}

func (Account) TableName() string {
	return "users"
}

// EmployeeRef is a lightweight view of another employee row.
type EmployeeRef struct {
	ID         uint            `gorm:"column:id;primaryKey"`
	FirstName  string          `gorm:"column:first_name"`
	LastName   string          `gorm:"column:last_name"`
	Position   domain.Position `gorm:"column:position"`
	Department *string         `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
