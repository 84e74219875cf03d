package pdfgen_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/models"
	"bitbucket.org/mmdatafocus/billing_backend/pdfgen"
)

func testCompany() *models.Company {
	return &models.Company{
		ID:              "c-1",
		Name:            "PT Contoh Jaya",
		Address:         "Jl. Sudirman No. 1, Jakarta",
		Phone:           "+62 812 3456 7890",
		Email:           "hello@contoh.co.id",
		Npwp:            "01.234.567.8-901.000",
		BankName:        "Bank Mandiri",
		BankAccount:     "1234567890",
		BankAccountName: "PT Contoh Jaya",
	}
}

func testInvoice() *models.Invoice {
	return &models.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2025-001",
		CompanyId:     "c-1",
		ClientName:    "CV Pelanggan Setia",
		Date:          "2025-03-01",
		DueDate:       "2025-03-15",
		Currency:      models.CurrencyIDR,
		Items: []models.InvoiceItem{
			{Name: "Website design", Description: "Landing page", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5000000), Unit: "pcs", Total: decimal.NewFromInt(5000000)},
			{Name: "Hosting", Description: "12 months", Quantity: decimal.NewFromInt(12), UnitPrice: decimal.NewFromInt(100000), Unit: "month", Total: decimal.NewFromInt(1200000)},
		},
		Subtotal:       decimal.NewFromInt(6200000),
		DiscountRate:   decimal.NewFromInt(5),
		DiscountAmount: decimal.NewFromInt(310000),
		TaxRate:        decimal.NewFromInt(11),
		TaxAmount:      decimal.RequireFromString("647900"),
		Total:          decimal.RequireFromString("6537900"),
		Notes:          "Payment due within 14 days.",
		Status:         models.InvoiceStatusSent,
		SignatureName:  "Budi Santoso",
		SignaturePosition: "Director",
	}
}

func requirePdf(t *testing.T, out []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
	if len(out) < 1000 {
		t.Fatalf("output suspiciously small: %d bytes", len(out))
	}
}

func TestInvoicePdf(t *testing.T) {
	out, err := pdfgen.Invoice(testInvoice(), testCompany())
	requirePdf(t, out, err)
}

func TestInvoicePdfWithPlaceholderCompany(t *testing.T) {
	out, err := pdfgen.Invoice(testInvoice(), models.PlaceholderCompany())
	requirePdf(t, out, err)
}

func TestQuotationPdf(t *testing.T) {
	q := &models.Quotation{
		ID:              "quo-1",
		QuotationNumber: "QUO-2025-004",
		ClientName:      "PT Calon Klien",
		Date:            "2025-03-10",
		ValidUntil:      "2025-04-10",
		Currency:        models.CurrencyUSD,
		Items: []models.QuotationItem{
			{Name: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(150), Unit: "hour", Total: decimal.NewFromInt(1500)},
		},
		Subtotal: decimal.NewFromInt(1500),
		Total:    decimal.NewFromInt(1500),
		Status:   models.QuotationStatusDraft,
	}
	out, err := pdfgen.Quotation(q, testCompany())
	requirePdf(t, out, err)
}

func TestLetterPdf(t *testing.T) {
	letter := &models.Letter{
		ID:            "let-1",
		LetterNumber:  "001/SK/III/2025",
		Date:          "2025-03-05",
		Subject:       "Penawaran Kerja Sama",
		LetterType:    models.LetterTypeCooperation,
		RecipientName: "Bapak Agus",
		RecipientPosition: "Procurement Manager",
		RecipientAddress:  "Jl. Thamrin No. 10, Jakarta",
		Content:       "Dengan hormat,\n\nBersama surat ini kami sampaikan penawaran kerja sama.\n\nHormat kami,",
		CcList:        "Arsip",
		Signatories: []models.Signatory{
			{Name: "Budi Santoso", Position: "Director"},
			{Name: "Sari Dewi", Position: "Finance Manager"},
		},
	}
	out, err := pdfgen.Letter(letter, testCompany())
	requirePdf(t, out, err)
}
