package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func orderForm() url.Values {
	return url.Values{
		"nama":         {"Sari"},
		"alamat":       {"Jl. Merdeka 10"},
		"no_hp":        {"081234567890"},
		"email":        {"sari@example.com"},
		"barang":       {"Sepatu lari"},
		"metode_bayar": {"COD"},
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLandingPage(t *testing.T) {
	env := newTestEnv(t)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Titip Sekarang")
}

func TestSubmitOrder_Success(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Submit", mock.Anything, mock.MatchedBy(func(in services.PesananInput) bool {
		return in.Nama == "Sari" && in.MetodeBayar == models.MetodeCOD
	})).Return(&models.Pesanan{ID: uuid.New(), Status: models.StatusPending}, nil)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, postForm("/form", orderForm()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pesanan Berhasil!")
	env.orders.AssertExpectations(t)
}

func TestSubmitOrder_MissingFieldKeepsValues(t *testing.T) {
	env := newTestEnv(t)
	form := orderForm()
	form.Del("barang")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, postForm("/form", form))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Terjadi kesalahan saat mengirim pesanan. Silakan coba lagi.")
	assert.Contains(t, w.Body.String(), `value="Sari"`)
	env.orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitOrder_BackendFailure(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, postForm("/form", orderForm()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Terjadi kesalahan saat mengirim pesanan")
}

func TestInvoicePage(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.invoices.On("View", mock.Anything, id).Return(&services.InvoiceView{
		Invoice: models.Invoice{ID: id, Harga: decimal.NewFromInt(20000), Total: decimal.NewFromInt(20000), DP: decimal.NewFromInt(5000)},
		Pesanan: models.Pesanan{Nama: "Sari"},
		Sisa:    decimal.NewFromInt(15000),
	}, nil)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rp 15.000")
}

func TestInvoicePage_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.invoices.On("View", mock.Anything, id).Return(nil, services.ErrNotFound)

	for _, path := range []string{"/invoice/" + id.String(), "/invoice/not-a-uuid"} {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Invoice tidak ditemukan")
	}
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Halaman tidak ditemukan")
}
