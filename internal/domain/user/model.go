package user

import (
	"time"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/database"
)

// Role values stored in the role column. Anything other than admin is
// treated as a regular account.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	database.BaseModel
	Username    string     `gorm:"column:username;unique;not null" json:"username"`
	Email       string     `gorm:"column:email;unique;not null" json:"email"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Role        string     `gorm:"column:role;not null;default:staff" json:"role"`
	Password    string     `gorm:"column:password;not null" json:"-"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
