package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/views"
)

// AdminController serves the HTML admin area.
type AdminController struct {
	auth      AuthService
	dashboard DashboardService
	orders    OrderService
	invoices  InvoiceService
	secure    bool
}

func NewAdminController(auth AuthService, dashboard DashboardService, orders OrderService, invoices InvoiceService, secureCookies bool) *AdminController {
	return &AdminController{
		auth:      auth,
		dashboard: dashboard,
		orders:    orders,
		invoices:  invoices,
		secure:    secureCookies,
	}
}

type loginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Dashboard renders the login form for signed-out visitors and the order
// list with stats once signed in.
func (ac *AdminController) Dashboard(c *gin.Context) {
	session := currentSession(c)
	if !session.Authenticated() {
		c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Admin Login"})
		return
	}

	ctx := c.Request.Context()
	data := gin.H{"Title": "Dashboard Admin", "Email": session.Email}

	orders, err := ac.dashboard.ListOrders(ctx)
	if err != nil {
		log.Printf("[ADMIN] list orders: %v", err)
		orders = []models.Pesanan{}
		data["Error"] = "Gagal memuat pesanan"
	}
	stats, err := ac.dashboard.ComputeStats(ctx)
	if err != nil {
		log.Printf("[ADMIN] compute stats: %v", err)
		data["Error"] = "Gagal memuat pesanan"
	}
	data["Orders"] = orders
	data["Stats"] = stats
	c.HTML(http.StatusOK, "admin.html", data)
}

func (ac *AdminController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Title": "Admin Login", "Email": form.Email, "Error": msgLoginFailed})
		return
	}
	token, _, err := ac.auth.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		code := http.StatusUnauthorized
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("[AUTH] sign in failed: %v", err)
			code = http.StatusInternalServerError
		}
		c.HTML(code, "login.html", gin.H{"Title": "Admin Login", "Email": form.Email, "Error": msgLoginFailed})
		return
	}
	setSessionCookie(c, token, int(ac.auth.TTL().Seconds()), ac.secure)
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (ac *AdminController) Logout(c *gin.Context) {
	if err := ac.auth.SignOut(c.Request.Context(), currentToken(c)); err != nil {
		log.Printf("[AUTH] sign out failed: %v", err)
	}
	setSessionCookie(c, "", -1, ac.secure)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// InvoiceEditor opens the editor for one order. "?edit=1" unlocks a stored
// invoice.
func (ac *AdminController) InvoiceEditor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Message": "Pesanan tidak ditemukan"})
		return
	}
	editor, err := ac.invoices.OpenEditor(c.Request.Context(), id)
	if err != nil {
		ac.editorUnavailable(c, err)
		return
	}
	if c.Query("edit") == "1" {
		editor.Unlock()
	}
	ac.renderEditor(c, http.StatusOK, editor, "")
}

// SaveInvoice upserts the invoice and shows it locked with its public link.
// A failed write leaves the form as submitted.
func (ac *AdminController) SaveInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Message": "Pesanan tidak ditemukan"})
		return
	}
	var in services.InvoiceInput
	if err := c.ShouldBind(&in); err != nil {
		log.Printf("[INVOICE] bind failed: %v", err)
		ac.rejectInvoice(c, id, in, http.StatusBadRequest, msgInvoiceFailed)
		return
	}

	ctx := c.Request.Context()
	if _, err := ac.invoices.Save(ctx, id, in); err != nil {
		code := http.StatusBadRequest
		message := msgInvoiceFailed
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			message += ": " + verr.Message
		case errors.Is(err, services.ErrNotFound):
			ac.editorUnavailable(c, err)
			return
		default:
			log.Printf("[INVOICE] save failed: %v", err)
			code = http.StatusInternalServerError
		}
		ac.rejectInvoice(c, id, in, code, message)
		return
	}

	editor, err := ac.invoices.OpenEditor(ctx, id)
	if err != nil {
		ac.editorUnavailable(c, err)
		return
	}
	ac.renderEditor(c, http.StatusOK, editor, "")
}

// rejectInvoice shows the editor unlocked with the submitted values and the
// total they add up to.
func (ac *AdminController) rejectInvoice(c *gin.Context, id uuid.UUID, in services.InvoiceInput, code int, message string) {
	editor, err := ac.invoices.OpenEditor(c.Request.Context(), id)
	if err != nil {
		ac.editorUnavailable(c, err)
		return
	}
	editor.Unlock()
	editor.Input = in
	editor.Total = in.Total()
	ac.renderEditor(c, code, editor, message)
}

// AdvanceStatus moves an order one step forward and returns to the dashboard.
func (ac *AdminController) AdvanceStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Message": "Pesanan tidak ditemukan"})
		return
	}
	if _, err := ac.orders.UpdateStatus(c.Request.Context(), id, c.PostForm("status")); err != nil {
		log.Printf("[ADMIN] status update for %s: %v", id, err)
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (ac *AdminController) renderEditor(c *gin.Context, code int, editor *services.Editor, message string) {
	values := views.InvoiceValues{
		Harga:  editor.Input.Harga,
		Fee:    editor.Input.Fee,
		Diskon: editor.Input.Diskon,
		DP:     editor.Input.DP,
		Status: editor.Input.Status,
	}
	c.HTML(code, "invoice_editor.html", gin.H{
		"Title":  "Invoice " + editor.Pesanan.Nama,
		"Editor": editor,
		"Fields": views.InvoiceFields(values, editor.Locked()),
		"Error":  message,
	})
}

func (ac *AdminController) editorUnavailable(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Message": "Pesanan tidak ditemukan"})
		return
	}
	log.Printf("[INVOICE] open editor: %v", err)
	c.HTML(http.StatusInternalServerError, "not_found.html", gin.H{"Message": msgInvoiceFailed})
}

func setSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", secure, true)
}
