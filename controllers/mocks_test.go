package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/controllers"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/routes"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/views"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const adminToken = "valid-admin-token"

// MockAuthService resolves sessions from a fixed token table so every
// request through the session gate can be probed without expectations.
type MockAuthService struct {
	mock.Mock
	sessions map[string]services.Session
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, services.Session, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(services.Session), args.Error(2)
}

func (m *MockAuthService) Probe(_ context.Context, token string) services.Session {
	return m.sessions[token]
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, session services.Session) (*models.Admin, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) TTL() time.Duration { return time.Hour }

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Submit(ctx context.Context, in services.PesananInput) (*models.Pesanan, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pesanan), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, to string) (*models.Pesanan, error) {
	args := m.Called(ctx, id, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pesanan), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ListOrders(ctx context.Context) ([]models.Pesanan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pesanan), args.Error(1)
}

func (m *MockDashboardService) ComputeStats(ctx context.Context) (services.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Stats), args.Error(1)
}

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) OpenEditor(ctx context.Context, pesananID uuid.UUID) (*services.Editor, error) {
	args := m.Called(ctx, pesananID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Editor), args.Error(1)
}

func (m *MockInvoiceService) Save(ctx context.Context, pesananID uuid.UUID, in services.InvoiceInput) (*models.Invoice, error) {
	args := m.Called(ctx, pesananID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) View(ctx context.Context, invoiceID uuid.UUID) (*services.InvoiceView, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) Links() services.LinkBuilder {
	return services.LinkBuilder{BaseURL: "https://jastip.example"}
}

type testEnv struct {
	auth      *MockAuthService
	orders    *MockOrderService
	dashboard *MockDashboardService
	invoices  *MockInvoiceService
	router    *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	renderer, err := views.New()
	require.NoError(t, err)

	env := &testEnv{
		auth: &MockAuthService{sessions: map[string]services.Session{
			adminToken: {State: services.Authenticated, AdminID: uuid.New(), Email: "admin@jastip.id", TokenID: "jti-1"},
		}},
		orders:    new(MockOrderService),
		dashboard: new(MockDashboardService),
		invoices:  new(MockInvoiceService),
	}
	env.router = routes.SetupRouter(routes.Dependencies{
		Auth:  env.auth,
		Pages: controllers.NewPageController(env.orders, env.invoices),
		Admin: controllers.NewAdminController(env.auth, env.dashboard, env.orders, env.invoices, false),
		API:   controllers.NewAPIController(env.auth, env.dashboard, env.orders, env.invoices, false),
		HTML:  renderer,
	})
	return env
}
