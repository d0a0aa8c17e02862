package department

// DepartmentOption is one department name in use by at least one employee.
type DepartmentOption struct {
	Name string `json:"name"`
}
