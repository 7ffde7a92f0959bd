package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
)

// PesananInput is what the order form submits.
type PesananInput struct {
	Nama        string `json:"nama" form:"nama" binding:"required"`
	Alamat      string `json:"alamat" form:"alamat" binding:"required"`
	NoHP        string `json:"no_hp" form:"no_hp" binding:"required"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Barang      string `json:"barang" form:"barang" binding:"required"`
	MetodeBayar string `json:"metode_bayar" form:"metode_bayar" binding:"required,oneof=COD Transfer"`
	Catatan     string `json:"catatan" form:"catatan"`
}

func (in *PesananInput) normalize() {
	in.Nama = strings.TrimSpace(in.Nama)
	in.Alamat = strings.TrimSpace(in.Alamat)
	in.NoHP = strings.TrimSpace(in.NoHP)
	in.Email = strings.TrimSpace(in.Email)
	in.Barang = strings.TrimSpace(in.Barang)
	in.MetodeBayar = strings.TrimSpace(in.MetodeBayar)
	in.Catatan = strings.TrimSpace(in.Catatan)
}

// Validate checks the form the same way regardless of transport.
func (in PesananInput) Validate() error {
	required := []struct{ field, value string }{
		{"nama", in.Nama},
		{"alamat", in.Alamat},
		{"no_hp", in.NoHP},
		{"email", in.Email},
		{"barang", in.Barang},
		{"metode_bayar", in.MetodeBayar},
	}
	for _, r := range required {
		if r.value == "" {
			return invalid(r.field, "wajib diisi")
		}
	}
	if !strings.Contains(in.Email, "@") {
		return invalid("email", "email tidak valid")
	}
	if in.MetodeBayar != models.MetodeCOD && in.MetodeBayar != models.MetodeTransfer {
		return invalid("metode_bayar", "pilih COD atau Transfer")
	}
	return nil
}

type OrderService struct {
	pesanan  repository.PesananRepository
	events   EventPublisher
	notifier OrderNotifier
	run      Runner
}

func NewOrderService(pesanan repository.PesananRepository, events EventPublisher, notifier OrderNotifier) *OrderService {
	return &OrderService{pesanan: pesanan, events: events, notifier: notifier, run: Background}
}

// Submit stores a new order. Every order starts out pending.
func (s *OrderService) Submit(ctx context.Context, in PesananInput) (*models.Pesanan, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &models.Pesanan{
		Nama:        in.Nama,
		Alamat:      in.Alamat,
		NoHP:        in.NoHP,
		Email:       in.Email,
		Barang:      in.Barang,
		MetodeBayar: in.MetodeBayar,
		Catatan:     in.Catatan,
		Status:      models.StatusPending,
	}
	if err := s.pesanan.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create pesanan: %w", err)
	}
	log.Printf("[ORDER] pesanan %s created for %s", p.ID, p.Nama)

	created := *p
	s.run(func() {
		bg := context.Background()
		if err := s.events.Publish(bg, EventPesananCreated, created.ID.String(), created); err != nil {
			log.Printf("[ORDER] publish %s failed: %v", EventPesananCreated, err)
		}
		if err := s.notifier.PesananCreated(bg, created); err != nil {
			log.Printf("[ORDER] admin notification for %s failed: %v", created.ID, err)
		}
	})
	return p, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Pesanan, error) {
	p, err := s.pesanan.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// UpdateStatus advances an order one step. Skipping or going back is refused.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, to string) (*models.Pesanan, error) {
	if !models.ValidStatus(to) {
		return nil, invalid("status", "status tidak dikenal")
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := models.NextStatus(p.Status)
	if !ok || next != to {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, to)
	}
	if err := s.pesanan.UpdateStatus(ctx, id, p.Status, to); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	from := p.Status
	p.Status = to

	s.run(func() {
		payload := map[string]string{"id": id.String(), "from": from, "to": to}
		if err := s.events.Publish(context.Background(), EventPesananStatusChanged, id.String(), payload); err != nil {
			log.Printf("[ORDER] publish %s failed: %v", EventPesananStatusChanged, err)
		}
	})
	return p, nil
}
