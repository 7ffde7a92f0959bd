package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceTotals are the dashboard aggregates, summed by the database.
type InvoiceTotals struct {
	TotalPenghasilan decimal.Decimal
	TotalDP          decimal.Decimal
}

type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	FindByPesanan(ctx context.Context, pesananID uuid.UUID) (*models.Invoice, error)
	Upsert(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	Totals(ctx context.Context) (InvoiceTotals, error)
	ListOutstanding(ctx context.Context) ([]models.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *invoiceRepository) FindByPesanan(ctx context.Context, pesananID uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.WithContext(ctx).Where("id_pesanan = ?", pesananID).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

// Upsert writes the invoice for inv.IDPesanan in one statement: a new row
// when none exists, otherwise the existing row's amounts and status are
// replaced and its id is kept. inv is refreshed from the stored row.
func (r *invoiceRepository) Upsert(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	err := r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_pesanan"}},
			DoUpdates: clause.AssignmentColumns([]string{"harga", "fee", "diskon", "dp", "total", "status", "updated_at"}),
		},
		clause.Returning{},
	).Create(inv).Error
	if err != nil {
		return nil, translate(err)
	}
	return inv, nil
}

// Totals sums revenue over paid invoices only; DP is summed over all of them.
func (r *invoiceRepository) Totals(ctx context.Context) (InvoiceTotals, error) {
	var totals InvoiceTotals
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0) AS total_penghasilan, "+
			"COALESCE(SUM(dp), 0) AS total_dp", models.InvoiceLunas).
		Scan(&totals).Error
	return totals, err
}

// ListOutstanding returns unpaid invoices with their orders, oldest first.
func (r *invoiceRepository) ListOutstanding(ctx context.Context) ([]models.Invoice, error) {
	var list []models.Invoice
	err := r.db.WithContext(ctx).Preload("Pesanan").
		Where("status = ?", models.InvoiceBelumLunas).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
