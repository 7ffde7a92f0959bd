package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/siinmedia/jastiphemat/utils"
)

type EditorMode string

const (
	EditorCreate  EditorMode = "create"
	EditorLocked  EditorMode = "locked"
	EditorEditing EditorMode = "editing"
)

// InvoiceInput carries the editor fields as typed by the admin. Amounts stay
// strings until Save so an empty field can be told apart from zero.
type InvoiceInput struct {
	InvoiceID string `json:"invoice_id" form:"invoice_id"`
	Harga     string `json:"harga" form:"harga"`
	Fee       string `json:"fee" form:"fee"`
	Diskon    string `json:"diskon" form:"diskon"`
	DP        string `json:"dp" form:"dp"`
	Status    string `json:"status" form:"status"`
}

// Total is what the typed amounts add up to, counting unparsable ones as 0.
// It matches what the editor's live preview shows.
func (in InvoiceInput) Total() decimal.Decimal {
	amount := func(s string) decimal.Decimal {
		d, _ := utils.ParseAmount(s)
		return d
	}
	return models.ComputeTotal(amount(in.Harga), amount(in.Fee), amount(in.Diskon))
}

// Editor is the state of the invoice editor for one order.
type Editor struct {
	Pesanan   models.Pesanan  `json:"pesanan"`
	InvoiceID *uuid.UUID      `json:"invoice_id"`
	Mode      EditorMode      `json:"mode"`
	Input     InvoiceInput    `json:"input"`
	Total     decimal.Decimal `json:"total"`
	Link      string          `json:"link,omitempty"`
}

func (e *Editor) HasInvoice() bool { return e.InvoiceID != nil }

func (e *Editor) Locked() bool { return e.Mode == EditorLocked }

// Unlock is the "Edit" affordance on a stored invoice.
func (e *Editor) Unlock() {
	if e.Mode == EditorLocked {
		e.Mode = EditorEditing
	}
}

func (e *Editor) CanSubmit() bool {
	return !e.Locked() && strings.TrimSpace(e.Input.Harga) != ""
}

// LinkBuilder turns invoice ids into shareable URLs.
type LinkBuilder struct {
	BaseURL string
}

func (b LinkBuilder) InvoiceLink(id uuid.UUID) string {
	return strings.TrimRight(b.BaseURL, "/") + "/invoice/" + id.String()
}

// InvoiceView is everything the public invoice page shows.
type InvoiceView struct {
	Invoice models.Invoice  `json:"invoice"`
	Pesanan models.Pesanan  `json:"pesanan"`
	Sisa    decimal.Decimal `json:"sisa"`
	Link    string          `json:"link"`
}

type InvoiceService struct {
	pesanan  repository.PesananRepository
	invoices repository.InvoiceRepository
	events   EventPublisher
	notifier InvoiceNotifier
	links    LinkBuilder
	run      Runner
}

func NewInvoiceService(pesanan repository.PesananRepository, invoices repository.InvoiceRepository, events EventPublisher, notifier InvoiceNotifier, links LinkBuilder) *InvoiceService {
	return &InvoiceService{
		pesanan:  pesanan,
		invoices: invoices,
		events:   events,
		notifier: notifier,
		links:    links,
		run:      Background,
	}
}

func (s *InvoiceService) Links() LinkBuilder { return s.links }

// OpenEditor looks up the invoice of an order by foreign key. A stored invoice
// opens locked; otherwise the editor starts empty in create mode.
func (s *InvoiceService) OpenEditor(ctx context.Context, pesananID uuid.UUID) (*Editor, error) {
	p, err := s.findPesanan(ctx, pesananID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.FindByPesanan(ctx, pesananID)
	if errors.Is(err, repository.ErrNotFound) {
		return &Editor{Pesanan: *p, Mode: EditorCreate, Input: InvoiceInput{Status: models.InvoiceBelumLunas}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return s.LockedEditor(*p, *inv), nil
}

// LockedEditor is the display state for a stored invoice.
func (s *InvoiceService) LockedEditor(p models.Pesanan, inv models.Invoice) *Editor {
	id := inv.ID
	return &Editor{
		Pesanan:   p,
		InvoiceID: &id,
		Mode:      EditorLocked,
		Input: InvoiceInput{
			InvoiceID: id.String(),
			Harga:     inv.Harga.String(),
			Fee:       inv.Fee.String(),
			Diskon:    inv.Diskon.String(),
			DP:        inv.DP.String(),
			Status:    inv.Status,
		},
		Total: inv.Total,
		Link:  s.links.InvoiceLink(id),
	}
}

// Save writes the invoice of an order. Total is derived here, right before
// the upsert, so the stored value always matches harga + fee - diskon.
func (s *InvoiceService) Save(ctx context.Context, pesananID uuid.UUID, in InvoiceInput) (*models.Invoice, error) {
	inv, err := parseInvoiceInput(in)
	if err != nil {
		return nil, err
	}
	p, err := s.findPesanan(ctx, pesananID)
	if err != nil {
		return nil, err
	}
	inv.IDPesanan = pesananID
	if inv.ID != uuid.Nil {
		if err := s.checkHeldInvoice(ctx, pesananID, inv.ID); err != nil {
			return nil, err
		}
	}

	saved, err := s.invoices.Upsert(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("upsert invoice: %w", err)
	}
	log.Printf("[INVOICE] invoice %s saved for pesanan %s, total %s", saved.ID, pesananID, saved.Total)

	order, stored := *p, *saved
	link := s.links.InvoiceLink(saved.ID)
	s.run(func() {
		bg := context.Background()
		if err := s.events.Publish(bg, EventInvoiceSaved, stored.ID.String(), stored); err != nil {
			log.Printf("[INVOICE] publish %s failed: %v", EventInvoiceSaved, err)
		}
		if err := s.notifier.InvoiceSaved(bg, order, stored, link); err != nil {
			log.Printf("[INVOICE] whatsapp for %s failed: %v", stored.ID, err)
		}
	})
	return saved, nil
}

// View loads an invoice and its order for the public page. Any failure is
// reported as not found.
func (s *InvoiceService) View(ctx context.Context, invoiceID uuid.UUID) (*InvoiceView, error) {
	inv, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[INVOICE] load invoice %s: %v", invoiceID, err)
		}
		return nil, ErrNotFound
	}
	p, err := s.pesanan.FindByID(ctx, inv.IDPesanan)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[INVOICE] load pesanan %s: %v", inv.IDPesanan, err)
		}
		return nil, ErrNotFound
	}
	return &InvoiceView{
		Invoice: *inv,
		Pesanan: *p,
		Sisa:    inv.Sisa(),
		Link:    s.links.InvoiceLink(inv.ID),
	}, nil
}

func (s *InvoiceService) findPesanan(ctx context.Context, id uuid.UUID) (*models.Pesanan, error) {
	p, err := s.pesanan.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pesanan: %w", err)
	}
	return p, nil
}

// checkHeldInvoice rejects an invoice id that is not the one stored for the
// order, so an update can never collide with another order's invoice.
func (s *InvoiceService) checkHeldInvoice(ctx context.Context, pesananID, held uuid.UUID) error {
	stored, err := s.invoices.FindByPesanan(ctx, pesananID)
	if errors.Is(err, repository.ErrNotFound) {
		return invalid("invoice_id", "invoice tidak cocok dengan pesanan")
	}
	if err != nil {
		return fmt.Errorf("find invoice: %w", err)
	}
	if stored.ID != held {
		return invalid("invoice_id", "invoice tidak cocok dengan pesanan")
	}
	return nil
}

func parseInvoiceInput(in InvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(in.Harga) == "" {
		return nil, invalid("harga", "wajib diisi")
	}
	inv := &models.Invoice{}
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"harga", in.Harga, &inv.Harga},
		{"fee", in.Fee, &inv.Fee},
		{"diskon", in.Diskon, &inv.Diskon},
		{"dp", in.DP, &inv.DP},
	}
	for _, f := range fields {
		v, err := utils.ParseAmount(f.raw)
		if err != nil {
			return nil, invalid(f.name, "angka tidak valid")
		}
		if v.IsNegative() {
			return nil, invalid(f.name, "tidak boleh negatif")
		}
		*f.dst = v
	}

	inv.Status = strings.TrimSpace(in.Status)
	if inv.Status == "" {
		inv.Status = models.InvoiceBelumLunas
	}
	if !models.ValidInvoiceStatus(inv.Status) {
		return nil, invalid("status", "status tidak dikenal")
	}

	inv.Recalculate()
	if inv.Total.IsNegative() {
		return nil, invalid("diskon", "diskon melebihi harga dan fee")
	}
	if inv.DP.GreaterThan(inv.Total) {
		return nil, invalid("dp", "DP melebihi total")
	}

	if id := strings.TrimSpace(in.InvoiceID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, invalid("invoice_id", "id invoice tidak valid")
		}
		inv.ID = parsed
	}
	return inv, nil
}
