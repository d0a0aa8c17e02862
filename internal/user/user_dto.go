package user

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" binding:"required"`
	NewPassword             string `json:"new_password" binding:"required,min=8,max=255"`
	NewPasswordConfirmation string `json:"new_password_confirmation" binding:"required,eqfield=NewPassword"`
}

type EmployeeSummary struct {
	ID              uint    `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	DisplayLastName string  `json:"display_last_name"`
	Position        string  `json:"position"`
	PositionLabel   string  `json:"position_label"`
	Department      *string `json:"department"`
}

type UserResponse struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Username           string           `json:"username"`
	Email              *string          `json:"email"`
	MustChangePassword bool             `json:"must_change_password"`
	Employee           *EmployeeSummary `json:"employee"`
	CreatedAt          string           `json:"created_at"`
}
