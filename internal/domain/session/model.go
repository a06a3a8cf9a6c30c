package session

import (
	"time"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/database"
)

// Session TTLs. Remember-me logins stay valid for a day, everything else
// expires after two hours.
const (
	DefaultTTL    = 2 * time.Hour
	RememberMeTTL = 24 * time.Hour
)

type Session struct {
	database.BaseModel

	UserID       string    `gorm:"column:user_id;type:uuid;not null;index"`
	SessionToken string    `gorm:"column:session_token;not null;uniqueIndex"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null"`
	RememberMe   bool      `gorm:"column:remember_me;default:false"`

	IPAddress string `gorm:"column:ip_address;type:text"`
	UserAgent string `gorm:"column:user_agent;type:text"`
}

func (Session) TableName() string {
	return "sessions"
}

// TTL returns the session duration for the given remember-me choice
func TTL(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberMeTTL
	}
	return DefaultTTL
}

// Expired reports whether the row's expiry has passed
func (s *Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
