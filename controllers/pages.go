package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/views"
)

// PageController serves the public pages.
type PageController struct {
	orders   OrderService
	invoices InvoiceService
}

func NewPageController(orders OrderService, invoices InvoiceService) *PageController {
	return &PageController{orders: orders, invoices: invoices}
}

func (pc *PageController) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{})
}

func (pc *PageController) OrderForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Title":  "Form Titip Barang",
		"Fields": views.OrderFields(views.OrderValues{}),
	})
}

// SubmitOrder inserts the order and shows the confirmation screen. On any
// failure the form comes back with what the customer typed.
func (pc *PageController) SubmitOrder(c *gin.Context) {
	var in services.PesananInput
	code := http.StatusOK
	if err := c.ShouldBind(&in); err != nil {
		code = http.StatusBadRequest
	} else if _, err := pc.orders.Submit(c.Request.Context(), in); err != nil {
		code = http.StatusBadRequest
		if !errors.Is(err, services.ErrInvalidInput) {
			log.Printf("[ORDER] submit failed: %v", err)
			code = http.StatusInternalServerError
		}
	}
	if code != http.StatusOK {
		c.HTML(code, "form.html", gin.H{
			"Title":  "Form Titip Barang",
			"Error":  msgOrderFailed,
			"Fields": views.OrderFields(orderValues(in)),
		})
		return
	}
	c.HTML(http.StatusOK, "form_success.html", gin.H{"Title": "Pesanan Berhasil"})
}

// InvoicePage is the public, printable invoice.
func (pc *PageController) InvoicePage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		pc.invoiceNotFound(c)
		return
	}
	view, err := pc.invoices.View(c.Request.Context(), id)
	if err != nil {
		pc.invoiceNotFound(c)
		return
	}
	c.HTML(http.StatusOK, "invoice.html", gin.H{
		"Title": "Invoice " + view.Pesanan.Nama,
		"View":  view,
	})
}

func (pc *PageController) invoiceNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Message": msgNotFound})
}

// NotFound answers unknown routes: JSON under /api and /auth, a page elsewhere.
func NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}

func orderValues(in services.PesananInput) views.OrderValues {
	return views.OrderValues{
		Nama:        in.Nama,
		Alamat:      in.Alamat,
		NoHP:        in.NoHP,
		Email:       in.Email,
		Barang:      in.Barang,
		MetodeBayar: in.MetodeBayar,
		Catatan:     in.Catatan,
	}
}
