package user

import (
	"time"

	"gorm.io/gorm"
)

// Repository interface for user lookups. User management itself lives
// elsewhere; this package only reads accounts and stamps logins.
type Repository interface {
	FindByID(id string) (*User, error)
	FindByUsername(username string) (*User, error)
	UpdateLastLogin(id string, t time.Time) error
	VerifyPassword(u *User, password string) bool
}

// repository struct for user operations
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// FindByID gets a user by ID
func (r *repository) FindByID(id string) (*User, error) {
	var user User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername gets a user by username
func (r *repository) FindByUsername(username string) (*User, error) {
	var user User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the last successful login time
func (r *repository) UpdateLastLogin(id string, t time.Time) error {
	return r.db.Model(&User{}).
		Where("id = ?", id).
		Update("last_login_at", t).Error
}

// VerifyPassword verifies if the provided password matches the user's hashed password
func (r *repository) VerifyPassword(u *User, password string) bool {
	return VerifyPassword(password, u.Password)
}
