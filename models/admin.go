package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/utils"
	"gorm.io/gorm"
)

// Admin is an account allowed into the dashboard.
type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `json:"name"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Hash the plain password before the row is written
func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return
}
