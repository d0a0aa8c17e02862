package domain

// Position is an employee's tier in the reporting hierarchy.
type Position string

const (
	PositionEmployer        Position = "employer"
	PositionSuperviseur     Position = "superviseur"
	PositionChefSuperviseur Position = "chef_superviseur"
	PositionManager         Position = "manager"
)

var Positions = []Position{
	PositionEmployer,
	PositionSuperviseur,
	PositionChefSuperviseur,
	PositionManager,
}

func (p Position) Valid() bool {
	switch p {
	case PositionEmployer, PositionSuperviseur, PositionChefSuperviseur, PositionManager:
		return true
	default:
		return false
	}
}

func (p Position) Label() string {
	switch p {
	case PositionEmployer:
		return "Employé"
	case PositionSuperviseur:
		return "Superviseur"
	case PositionChefSuperviseur:
		return "Chef Superviseur"
	case PositionManager:
		return "Manager"
	default:
		return string(p)
	}
}

// CanExport reports whether the position may pull raw report exports.
func (p Position) CanExport() bool {
	switch p {
	case PositionChefSuperviseur, PositionManager:
		return true
	case PositionEmployer, PositionSuperviseur:
		return false
	default:
		return false
	}
}

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusInactive   EmployeeStatus = "inactive"
	EmployeeStatusSuspended  EmployeeStatus = "suspended"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusSuspended, EmployeeStatusTerminated:
		return true
	default:
		return false
	}
}
