package views

import "github.com/siinmedia/jastiphemat/models"

type Option struct {
	Value string
	Label string
}

// Field describes one labelled input. The "field" template turns it into a
// text input, textarea or select depending on Type.
type Field struct {
	Label       string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Disabled    bool
	Rows        int
	Options     []Option
}

func (f Field) IsTextarea() bool { return f.Type == "textarea" }
func (f Field) IsSelect() bool   { return f.Type == "select" }

func (f Field) InputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

func (f Field) RowCount() int {
	if f.Rows <= 0 {
		return 3
	}
	return f.Rows
}

// OrderValues are the order form values echoed back after a failed submit.
type OrderValues struct {
	Nama        string
	Alamat      string
	NoHP        string
	Email       string
	Barang      string
	MetodeBayar string
	Catatan     string
}

func OrderFields(v OrderValues) []Field {
	return []Field{
		{Label: "Nama Lengkap", Name: "nama", Value: v.Nama, Placeholder: "Masukkan nama lengkap", Required: true},
		{Label: "Alamat Lengkap", Name: "alamat", Type: "textarea", Value: v.Alamat, Rows: 3, Required: true,
			Placeholder: "Jl. Contoh No. 123, RT/RW 01/02, Kelurahan, Kecamatan, Kota, Kode Pos"},
		{Label: "Nomor HP / WhatsApp", Name: "no_hp", Type: "tel", Value: v.NoHP, Placeholder: "08xxxxxxxxxx", Required: true},
		{Label: "Email", Name: "email", Type: "email", Value: v.Email, Placeholder: "email@example.com", Required: true},
		{Label: "Barang yang Ingin Dititipkan", Name: "barang", Type: "textarea", Value: v.Barang, Rows: 4, Required: true,
			Placeholder: "Contoh: Tas LV Neverfull MM warna hitam, Sepatu Nike Air Force 1 size 40. Sebutkan merek, ukuran, warna, dan detail lainnya"},
		{Label: "Metode Pembayaran", Name: "metode_bayar", Type: "select", Value: v.MetodeBayar, Required: true,
			Options: []Option{
				{Value: models.MetodeCOD, Label: "COD (Cash on Delivery)"},
				{Value: models.MetodeTransfer, Label: "Transfer Bank"},
			}},
		{Label: "Catatan Tambahan", Name: "catatan", Type: "textarea", Value: v.Catatan, Rows: 3,
			Placeholder: "Catatan khusus atau permintaan tambahan (opsional)"},
	}
}

// InvoiceValues are the editor amounts as strings.
type InvoiceValues struct {
	Harga  string
	Fee    string
	Diskon string
	DP     string
	Status string
}

// InvoiceFields builds the editor inputs. Locked editors show the stored
// values read-only.
func InvoiceFields(v InvoiceValues, locked bool) []Field {
	status := v.Status
	if status == "" {
		status = models.InvoiceBelumLunas
	}
	return []Field{
		{Label: "Harga Barang", Name: "harga", Type: "number", Value: v.Harga, Placeholder: "0", Required: true, Disabled: locked},
		{Label: "Fee Jastip", Name: "fee", Type: "number", Value: v.Fee, Placeholder: "0", Disabled: locked},
		{Label: "Diskon", Name: "diskon", Type: "number", Value: v.Diskon, Placeholder: "0", Disabled: locked},
		{Label: "DP (Down Payment)", Name: "dp", Type: "number", Value: v.DP, Placeholder: "0", Disabled: locked},
		{Label: "Status Pembayaran", Name: "status", Type: "select", Value: status, Disabled: locked,
			Options: []Option{
				{Value: models.InvoiceBelumLunas, Label: "Belum Lunas"},
				{Value: models.InvoiceLunas, Label: "Lunas"},
			}},
	}
}
