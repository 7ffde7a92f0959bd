package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/utils"
)

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, services.Session, error)
	Probe(ctx context.Context, token string) services.Session
	SignOut(ctx context.Context, token string) error
	Me(ctx context.Context, session services.Session) (*models.Admin, error)
	TTL() time.Duration
}

type OrderService interface {
	Submit(ctx context.Context, in services.PesananInput) (*models.Pesanan, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, to string) (*models.Pesanan, error)
}

type DashboardService interface {
	ListOrders(ctx context.Context) ([]models.Pesanan, error)
	ComputeStats(ctx context.Context) (services.Stats, error)
}

type InvoiceService interface {
	OpenEditor(ctx context.Context, pesananID uuid.UUID) (*services.Editor, error)
	Save(ctx context.Context, pesananID uuid.UUID, in services.InvoiceInput) (*models.Invoice, error)
	View(ctx context.Context, invoiceID uuid.UUID) (*services.InvoiceView, error)
	Links() services.LinkBuilder
}

const (
	msgOrderFailed   = "Terjadi kesalahan saat mengirim pesanan. Silakan coba lagi."
	msgInvoiceFailed = "Terjadi kesalahan saat membuat invoice"
	msgLoginFailed   = "Email atau password salah"
	msgNotFound      = "Invoice tidak ditemukan"
)

// respondError maps service errors onto JSON error responses.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}
