package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InvoiceBelumLunas = "belum_lunas"
	InvoiceLunas      = "lunas"
)

// Invoice belongs to exactly one Pesanan. The unique index on id_pesanan is
// what makes the upsert in the repository atomic.
type Invoice struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	IDPesanan uuid.UUID       `gorm:"column:id_pesanan;type:uuid;not null;uniqueIndex" json:"id_pesanan"`
	Harga     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"harga"`
	Fee       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"fee"`
	Diskon    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"diskon"`
	DP        decimal.Decimal `gorm:"column:dp;type:numeric(14,2);not null;default:0" json:"dp"`
	Total     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total"`
	Status    string          `gorm:"type:varchar(20);not null;default:'belum_lunas'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Pesanan *Pesanan `gorm:"foreignKey:IDPesanan;constraint:OnDelete:CASCADE" json:"-"`
}

func (Invoice) TableName() string {
	return "invoice"
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InvoiceBelumLunas
	}
	return
}

// ComputeTotal is the single place the invoice total is derived.
func ComputeTotal(harga, fee, diskon decimal.Decimal) decimal.Decimal {
	return harga.Add(fee).Sub(diskon)
}

// Recalculate refreshes Total from the price components.
func (i *Invoice) Recalculate() {
	i.Total = ComputeTotal(i.Harga, i.Fee, i.Diskon)
}

// Sisa is the remaining balance after the down payment. It goes negative
// when dp exceeds total; writes reject that case but old rows may carry it.
func (i Invoice) Sisa() decimal.Decimal {
	return i.Total.Sub(i.DP)
}

func (i Invoice) IsLunas() bool {
	return i.Status == InvoiceLunas
}

func ValidInvoiceStatus(s string) bool {
	return s == InvoiceBelumLunas || s == InvoiceLunas
}
