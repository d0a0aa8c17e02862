package user

import (
	"time"
)

type User struct {
	ID                uint       `gorm:"column:id;primaryKey"`
	Name              string     `gorm:"column:name;type:varchar(255);not null"`
	Username          string     `gorm:"column:username;type:varchar(255);not null;uniqueIndex:uq_users_username"`
	Email             *string    `gorm:"column:email;type:varchar(255)"`
	Password          string     `gorm:"column:password;type:varchar(255);not null"`
	PasswordChangedAt *time.Time `gorm:"column:password_changed_at"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Employee *UserEmployee `gorm:"foreignKey:UserID;references:ID"`
}

// MustChangePassword is true while the generated default password is still in use.
func (u User) MustChangePassword() bool {
	return u.PasswordChangedAt == nil
}

// UserEmployee is the slice of the employee profile shown next to an account.
type UserEmployee struct {
	ID         uint    `gorm:"column:id;primaryKey"`
	UserID     *uint   `gorm:"column:user_id"`
	EmployeeID string  `gorm:"column:employee_id"`
	FirstName  string  `gorm:"column:first_name"`
	LastName   string  `gorm:"column:last_name"`
	Position   string  `gorm:"column:position"`
	Department *string `gorm:"column:department"`
}

func (UserEmployee) TableName() string {
	return "employees"
}
