package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/utils"
)

// APIController exposes the same operations as JSON.
type APIController struct {
	auth      AuthService
	dashboard DashboardService
	orders    OrderService
	invoices  InvoiceService
	secure    bool
}

func NewAPIController(auth AuthService, dashboard DashboardService, orders OrderService, invoices InvoiceService, secureCookies bool) *APIController {
	return &APIController{
		auth:      auth,
		dashboard: dashboard,
		orders:    orders,
		invoices:  invoices,
		secure:    secureCookies,
	}
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// invoicePayload accepts amounts as JSON numbers or numeric strings.
type invoicePayload struct {
	InvoiceID string      `json:"invoice_id"`
	Harga     json.Number `json:"harga"`
	Fee       json.Number `json:"fee"`
	Diskon    json.Number `json:"diskon"`
	DP        json.Number `json:"dp"`
	Status    string      `json:"status"`
}

func (p invoicePayload) input() services.InvoiceInput {
	return services.InvoiceInput{
		InvoiceID: p.InvoiceID,
		Harga:     p.Harga.String(),
		Fee:       p.Fee.String(),
		Diskon:    p.Diskon.String(),
		DP:        p.DP.String(),
		Status:    p.Status,
	}
}

func (api *APIController) Login(c *gin.Context) {
	var input loginForm
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	token, session, err := api.auth.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token, int(api.auth.TTL().Seconds()), api.secure)
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
	})
}

func (api *APIController) Logout(c *gin.Context) {
	if err := api.auth.SignOut(c.Request.Context(), currentToken(c)); err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, "", -1, api.secure)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (api *APIController) Me(c *gin.Context) {
	admin, err := api.auth.Me(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"name":       admin.Name,
			"last_login": admin.LastLogin,
		},
		"session": currentSession(c),
	})
}

func (api *APIController) CreatePesanan(c *gin.Context) {
	var input services.PesananInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	p, err := api.orders.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (api *APIController) ListPesanan(c *gin.Context) {
	orders, err := api.dashboard.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Pesanan{}
	}
	c.JSON(http.StatusOK, gin.H{"data": orders, "total": len(orders)})
}

func (api *APIController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pesanan ID")
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	p, err := api.orders.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (api *APIController) Stats(c *gin.Context) {
	stats, err := api.dashboard.ComputeStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *APIController) GetEditor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pesanan ID")
		return
	}
	editor, err := api.invoices.OpenEditor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, editor)
}

func (api *APIController) SaveInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pesanan ID")
		return
	}
	var payload invoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	inv, err := api.invoices.Save(c.Request.Context(), id, payload.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invoice": inv,
		"link":    api.invoices.Links().InvoiceLink(inv.ID),
	})
}

func (api *APIController) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, msgNotFound)
		return
	}
	view, err := api.invoices.View(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, msgNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}
