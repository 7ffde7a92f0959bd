package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/siinmedia/jastiphemat/utils"
)

// DigestLine is one outstanding invoice in the admin digest mail.
type DigestLine struct {
	Nama    string
	Barang  string
	Total   decimal.Decimal
	DP      decimal.Decimal
	Sisa    decimal.Decimal
	AgeDays int
	Link    string
}

func (l DigestLine) TotalText() string { return utils.FormatRupiah(l.Total) }
func (l DigestLine) DPText() string    { return utils.FormatRupiah(l.DP) }
func (l DigestLine) SisaText() string  { return utils.FormatRupiah(l.Sisa) }

// DigestService mails the admin a daily list of invoices still belum lunas.
type DigestService struct {
	invoices repository.InvoiceRepository
	notifier DigestNotifier
	links    LinkBuilder
	now      func() time.Time
	cron     *cron.Cron
}

func NewDigestService(invoices repository.InvoiceRepository, notifier DigestNotifier, links LinkBuilder) *DigestService {
	return &DigestService{
		invoices: invoices,
		notifier: notifier,
		links:    links,
		now:      time.Now,
	}
}

// Start schedules RunOnce on a standard five-field cron expression.
func (s *DigestService) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("[DIGEST] run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	log.Printf("[DIGEST] scheduler started (%s)", schedule)
	return nil
}

func (s *DigestService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}
}

// RunOnce sends the digest now and returns how many invoices it listed.
// Nothing is sent when every invoice is settled.
func (s *DigestService) RunOnce(ctx context.Context) (int, error) {
	outstanding, err := s.invoices.ListOutstanding(ctx)
	if err != nil {
		return 0, fmt.Errorf("list outstanding invoices: %w", err)
	}
	if len(outstanding) == 0 {
		log.Println("[DIGEST] no outstanding invoices")
		return 0, nil
	}

	now := s.now()
	lines := make([]DigestLine, 0, len(outstanding))
	for _, inv := range outstanding {
		line := DigestLine{
			Total:   inv.Total,
			DP:      inv.DP,
			Sisa:    inv.Sisa(),
			AgeDays: utils.DaysBetween(inv.CreatedAt, now),
			Link:    s.links.InvoiceLink(inv.ID),
		}
		if inv.Pesanan != nil {
			line.Nama = inv.Pesanan.Nama
			line.Barang = inv.Pesanan.Barang
		}
		lines = append(lines, line)
	}

	if err := s.notifier.OutstandingDigest(ctx, lines); err != nil {
		return 0, fmt.Errorf("send digest: %w", err)
	}
	log.Printf("[DIGEST] sent %d outstanding invoices", len(lines))
	return len(lines), nil
}
