package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/stretchr/testify/mock"
)

type MockPesananRepository struct {
	mock.Mock
}

func (m *MockPesananRepository) Create(ctx context.Context, p *models.Pesanan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPesananRepository) List(ctx context.Context) ([]models.Pesanan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pesanan), args.Error(1)
}

func (m *MockPesananRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pesanan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pesanan), args.Error(1)
}

func (m *MockPesananRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPesananRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByPesanan(ctx context.Context, pesananID uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, pesananID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Upsert(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Totals(ctx context.Context) (repository.InvoiceTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.InvoiceTotals), args.Error(1)
}

func (m *MockInvoiceRepository) ListOutstanding(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, a *models.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	args := m.Called(ctx, eventType, key, data)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PesananCreated(ctx context.Context, p models.Pesanan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockNotifier) InvoiceSaved(ctx context.Context, p models.Pesanan, inv models.Invoice, link string) error {
	args := m.Called(ctx, p, inv, link)
	return args.Error(0)
}

func (m *MockNotifier) OutstandingDigest(ctx context.Context, lines []DigestLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

type MockWhatsApp struct {
	mock.Mock
}

func (m *MockWhatsApp) SendWhatsApp(to, body string) error {
	args := m.Called(to, body)
	return args.Error(0)
}
