package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_ComputeStats(t *testing.T) {
	pesanan := new(MockPesananRepository)
	invoices := new(MockInvoiceRepository)
	pesanan.On("Count", mock.Anything).Return(int64(3), nil)
	invoices.On("Totals", mock.Anything).Return(repository.InvoiceTotals{
		TotalPenghasilan: dec("110000"),
		TotalDP:          dec("70000"),
	}, nil)

	stats, err := NewDashboardService(pesanan, invoices).ComputeStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPesanan)
	assert.Equal(t, "110000", stats.TotalPenghasilan.String())
	assert.Equal(t, "70000", stats.TotalDP.String())
}

func TestDashboardService_ComputeStats_Failure(t *testing.T) {
	pesanan := new(MockPesananRepository)
	invoices := new(MockInvoiceRepository)
	pesanan.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := NewDashboardService(pesanan, invoices).ComputeStats(context.Background())

	assert.Error(t, err)
	invoices.AssertNotCalled(t, "Totals", mock.Anything)
}

func TestDashboardService_ListOrders(t *testing.T) {
	pesanan := new(MockPesananRepository)
	now := time.Now()
	list := []models.Pesanan{
		{Nama: "Baru", CreatedAt: now},
		{Nama: "Lama", CreatedAt: now.Add(-time.Hour)},
	}
	pesanan.On("List", mock.Anything).Return(list, nil)

	got, err := NewDashboardService(pesanan, new(MockInvoiceRepository)).ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Baru", got[0].Nama)
}
