package provisioning

// Request is the minimal identity needed to open an account and employee profile.
type Request struct {
	FirstName  string  `json:"first_name" binding:"required,max=255"`
	LastName   string  `json:"last_name" binding:"required,max=255"`
	Phone      string  `json:"phone" binding:"required,phone8"`
	Position   string  `json:"position" binding:"required,oneof=employer superviseur chef_superviseur manager"`
	Department *string `json:"department" binding:"omitempty,max=255"`
	Email      *string `json:"email" binding:"omitempty,email,max=255"`
}

type Result struct {
	UserID          uint    `json:"user_id"`
	EmployeeID      uint    `json:"employee_id"`
	EmployeeCode    string  `json:"employee_code"`
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	DefaultPassword string  `json:"default_password"`
	Position        string  `json:"position"`
	Department      *string `json:"department"`
}
