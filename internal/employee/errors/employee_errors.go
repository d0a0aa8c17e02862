package employeeerrors

import (
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeCodeTaken = apperror.Conflict("employee_id", "Employee ID already exists")
	ErrEmailTaken        = apperror.Conflict("email", "Employee with the same email already exists")
	ErrPhoneTaken        = apperror.Conflict("phone", "Employee with the same phone already exists")
	ErrUserAlreadyLinked = apperror.Conflict("user_id", "User is already linked to another employee")

	ErrUserNotFound         = apperror.Validation("user_id", "User does not exist")
	ErrInvalidSalary        = apperror.Validation("salary", "Salary must be between 0 and 99999999.99")
	ErrInvalidHireDate      = apperror.Validation("hire_date", "Hire date must be a date not after today")
	ErrSupervisorRequired   = apperror.Validation("supervisor_id", "An employee must have a supervisor")
	ErrInvalidSupervisor    = apperror.Validation("supervisor_id", "Supervisor must be an employee with position superviseur")
	ErrSupervisorDepartment = apperror.Validation("supervisor_id", "Supervisor must be in the same department as the employee")
	ErrSelfSupervisor       = apperror.Validation("supervisor_id", "An employee cannot be their own supervisor")
	ErrInvalidManager       = apperror.Validation("manager_id", "Manager has a position that cannot manage this employee")
	ErrManagerDepartment    = apperror.Validation("manager_id", "Manager must be in the same department")
	ErrSelfManager          = apperror.Validation("manager_id", "An employee cannot be their own manager")
	ErrInvalidPosition      = apperror.Validation("position", "Position is invalid")
)
