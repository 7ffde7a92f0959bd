package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/utils"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

// Mailer sends an HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// WhatsAppSender delivers a text message to a phone number in E.164 form.
type WhatsAppSender interface {
	SendWhatsApp(to, body string) error
}

type OrderNotifier interface {
	PesananCreated(ctx context.Context, p models.Pesanan) error
}

type InvoiceNotifier interface {
	InvoiceSaved(ctx context.Context, p models.Pesanan, inv models.Invoice, link string) error
}

type DigestNotifier interface {
	OutstandingDigest(ctx context.Context, lines []DigestLine) error
}

// Notifier tells the admin about new orders by mail and the customer about
// a ready invoice over WhatsApp. Either channel may be nil.
type Notifier struct {
	mailer     Mailer
	whatsapp   WhatsAppSender
	adminEmail string
}

func NewNotifier(mailer Mailer, whatsapp WhatsAppSender, adminEmail string) *Notifier {
	return &Notifier{mailer: mailer, whatsapp: whatsapp, adminEmail: adminEmail}
}

var pesananMail = template.Must(template.New("pesanan").Parse(`
<h2>Pesanan baru dari {{.Nama}}</h2>
<p><strong>Barang:</strong> {{.Barang}}</p>
<p><strong>Metode bayar:</strong> {{.MetodeBayar}}</p>
<p><strong>HP:</strong> {{.NoHP}} &middot; <strong>Email:</strong> {{.Email}}</p>
<p><strong>Alamat:</strong> {{.Alamat}}</p>
{{if .Catatan}}<p><strong>Catatan:</strong> {{.Catatan}}</p>{{end}}
`))

var digestMail = template.Must(template.New("digest").Parse(`
<h2>Invoice belum lunas ({{len .}})</h2>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Nama</th><th>Barang</th><th>Total</th><th>DP</th><th>Sisa</th><th>Umur</th><th></th></tr>
{{range .}}<tr><td>{{.Nama}}</td><td>{{.Barang}}</td><td>{{.TotalText}}</td><td>{{.DPText}}</td><td>{{.SisaText}}</td><td>{{.AgeDays}} hari</td><td><a href="{{.Link}}">Lihat</a></td></tr>
{{end}}</table>
`))

func (n *Notifier) PesananCreated(ctx context.Context, p models.Pesanan) error {
	if n.mailer == nil || n.adminEmail == "" {
		log.Printf("[NOTIFY] mail disabled, skipping new order %s", p.ID)
		return nil
	}
	var body bytes.Buffer
	if err := pesananMail.Execute(&body, p); err != nil {
		return err
	}
	return n.mailer.Send(n.adminEmail, "Pesanan baru: "+p.Nama, body.String())
}

func (n *Notifier) InvoiceSaved(ctx context.Context, p models.Pesanan, inv models.Invoice, link string) error {
	if n.whatsapp == nil {
		log.Printf("[NOTIFY] whatsapp disabled, skipping invoice %s", inv.ID)
		return nil
	}
	if !utils.ValidatePhone(p.NoHP) {
		log.Printf("[NOTIFY] %q is not a whatsapp number, skipping invoice %s", p.NoHP, inv.ID)
		return nil
	}
	return n.whatsapp.SendWhatsApp(utils.NormalizeWhatsApp(p.NoHP), InvoiceMessage(p, inv, link))
}

func (n *Notifier) OutstandingDigest(ctx context.Context, lines []DigestLine) error {
	if n.mailer == nil || n.adminEmail == "" {
		log.Printf("[NOTIFY] mail disabled, skipping digest of %d invoices", len(lines))
		return nil
	}
	var body bytes.Buffer
	if err := digestMail.Execute(&body, lines); err != nil {
		return err
	}
	return n.mailer.Send(n.adminEmail, fmt.Sprintf("Invoice belum lunas: %d", len(lines)), body.String())
}

// InvoiceMessage is the WhatsApp text sent with a new or updated invoice.
func InvoiceMessage(p models.Pesanan, inv models.Invoice, link string) string {
	msg := fmt.Sprintf("Halo %s, invoice jastip kamu sudah siap.\nTotal: %s", p.Nama, utils.FormatRupiah(inv.Total))
	if inv.IsLunas() {
		msg += "\nStatus: LUNAS"
	} else if inv.DP.IsPositive() {
		msg += "\nSisa pembayaran: " + utils.FormatRupiah(inv.Sisa())
	}
	return msg + "\nLihat invoice: " + link
}

// GomailMailer sends mail through an SMTP server.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailMailer(host string, port int, user, pass string) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (m *GomailMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	log.Printf("[NOTIFY] mail sent to %s: %s", to, subject)
	return nil
}

// TwilioSender sends WhatsApp messages through the Twilio API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSid, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *TwilioSender) SendWhatsApp(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send whatsapp to %s: %w", to, err)
	}
	if resp.Sid != nil {
		log.Printf("[NOTIFY] whatsapp sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
