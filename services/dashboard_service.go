package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
)

type Stats struct {
	TotalPesanan     int64           `json:"total_pesanan"`
	TotalPenghasilan decimal.Decimal `json:"total_penghasilan"`
	TotalDP          decimal.Decimal `json:"total_dp"`
}

type DashboardService struct {
	pesanan  repository.PesananRepository
	invoices repository.InvoiceRepository
}

func NewDashboardService(pesanan repository.PesananRepository, invoices repository.InvoiceRepository) *DashboardService {
	return &DashboardService{pesanan: pesanan, invoices: invoices}
}

// ListOrders returns all orders, newest first.
func (s *DashboardService) ListOrders(ctx context.Context) ([]models.Pesanan, error) {
	list, err := s.pesanan.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pesanan: %w", err)
	}
	return list, nil
}

// ComputeStats counts orders and sums revenue (lunas invoices only) and
// down payments (all invoices).
func (s *DashboardService) ComputeStats(ctx context.Context) (Stats, error) {
	count, err := s.pesanan.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count pesanan: %w", err)
	}
	totals, err := s.invoices.Totals(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("sum invoices: %w", err)
	}
	return Stats{
		TotalPesanan:     count,
		TotalPenghasilan: totals.TotalPenghasilan,
		TotalDP:          totals.TotalDP,
	}, nil
}
