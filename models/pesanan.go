package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusCompleted = "completed"
)

const (
	MetodeCOD      = "COD"
	MetodeTransfer = "Transfer"
)

// Pesanan is a customer order submitted through the public form.
type Pesanan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Nama        string    `gorm:"not null" json:"nama"`
	Alamat      string    `gorm:"type:text;not null" json:"alamat"`
	NoHP        string    `gorm:"column:no_hp;not null" json:"no_hp"`
	Email       string    `gorm:"not null" json:"email"`
	Barang      string    `gorm:"type:text;not null" json:"barang"`
	MetodeBayar string    `gorm:"type:varchar(20);not null" json:"metode_bayar"`
	Catatan     string    `gorm:"type:text" json:"catatan,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Pesanan) TableName() string {
	return "pesanan"
}

func (p *Pesanan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return
}

// NextStatus returns the status an order moves to from its current one.
// Orders only move forward: pending -> processed -> completed.
func NextStatus(current string) (string, bool) {
	switch current {
	case StatusPending:
		return StatusProcessed, true
	case StatusProcessed:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusProcessed || s == StatusCompleted
}
