package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name               string
		harga, fee, diskon int64
		want               int64
	}{
		{"no discount", 150000, 25000, 0, 175000},
		{"with discount", 150000, 25000, 10000, 165000},
		{"fee only", 0, 30000, 0, 30000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotal(decimal.NewFromInt(tc.harga), decimal.NewFromInt(tc.fee), decimal.NewFromInt(tc.diskon))
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s", got)
		})
	}
}

func TestInvoiceSisa(t *testing.T) {
	inv := Invoice{Total: decimal.NewFromInt(20000), DP: decimal.NewFromInt(5000)}
	assert.Equal(t, "15000", inv.Sisa().String())

	over := Invoice{Total: decimal.NewFromInt(10000), DP: decimal.NewFromInt(12000)}
	assert.True(t, over.Sisa().IsNegative())
}

func TestInvoiceRecalculate(t *testing.T) {
	inv := Invoice{
		Harga:  decimal.RequireFromString("100000.50"),
		Fee:    decimal.NewFromInt(20000),
		Diskon: decimal.NewFromInt(500),
		Total:  decimal.NewFromInt(1),
	}
	inv.Recalculate()
	assert.Equal(t, "119500.5", inv.Total.String())
}

func TestInvoiceBeforeCreateDefaults(t *testing.T) {
	inv := Invoice{IDPesanan: uuid.New()}
	require.NoError(t, inv.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, InvoiceBelumLunas, inv.Status)

	existing := uuid.New()
	kept := Invoice{ID: existing, Status: InvoiceLunas}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, existing, kept.ID)
	assert.Equal(t, InvoiceLunas, kept.Status)
}

func TestPesananBeforeCreateDefaultsToPending(t *testing.T) {
	p := Pesanan{Nama: "Livia"}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, StatusPending, p.Status)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestNextStatus(t *testing.T) {
	next, ok := NextStatus(StatusPending)
	assert.True(t, ok)
	assert.Equal(t, StatusProcessed, next)

	next, ok = NextStatus(StatusProcessed)
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = NextStatus(StatusCompleted)
	assert.False(t, ok)
}
