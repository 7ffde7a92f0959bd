package views

import (
	"html/template"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/utils"
)

var Funcs = template.FuncMap{
	"rupiah":      utils.FormatRupiah,
	"tanggal":     utils.FormatTanggal,
	"statusClass": StatusClass,
	"positive":    func(d decimal.Decimal) bool { return d.IsPositive() },
	"lunas":       func(status string) bool { return status == models.InvoiceLunas },
	"nextStatus": func(status string) string {
		next, _ := models.NextStatus(status)
		return next
	},
	"year": func() int { return time.Now().Year() },
}

// StatusClass is the badge colour of an order status.
func StatusClass(status string) string {
	switch status {
	case models.StatusPending:
		return "badge-pending"
	case models.StatusProcessed:
		return "badge-processed"
	case models.StatusCompleted:
		return "badge-completed"
	default:
		return "badge-unknown"
	}
}
