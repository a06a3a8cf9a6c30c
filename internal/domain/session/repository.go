package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(sess *Session) error
	FindByID(id uuid.UUID) (*Session, error)
	DeleteByID(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) (int64, error)
	DeleteExpired(before time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(sess *Session) error {
	return r.db.Create(sess).Error
}

// FindByID does an exact lookup with no expiry filtering; the service is
// responsible for checking ExpiresAt.
func (r *repository) FindByID(id uuid.UUID) (*Session, error) {
	var sess Session
	err := r.db.Where("id = ?", id).First(&sess).Error
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteByID removes a session row. Deleting a nonexistent id is not an error.
func (r *repository) DeleteByID(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&Session{}).Error
}

// DeleteByUserID removes every session owned by the user and reports how
// many rows went away.
func (r *repository) DeleteByUserID(userID uuid.UUID) (int64, error) {
	res := r.db.Where("user_id = ?", userID.String()).Delete(&Session{})
	return res.RowsAffected, res.Error
}

// DeleteExpired sweeps rows whose expiry lies before the given time.
// Invoked by operational tooling, never by the request path.
func (r *repository) DeleteExpired(before time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", before).Delete(&Session{})
	return res.RowsAffected, res.Error
}
