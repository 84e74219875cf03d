package models_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

func TestNewInvoiceDraftRecomputesServerSide(t *testing.T) {
	input := &models.NewInvoice{
		InvoiceNumber: "INV-100",
		CompanyId:     "c-1",
		ClientName:    "PT Client",
		Date:          "2025-03-01",
		DueDate:       "2025-03-15",
		Currency:      "USD",
		TaxRate:       "10",
		DiscountRate:  "5",
		Status:        "sent",
		Items: []models.NewDocumentItem{
			{Name: "Design work", Quantity: "2", UnitPrice: "100,000"},
			{Name: "Hosting", Quantity: 1, UnitPrice: 0},
		},
	}

	d := input.Draft()
	if d.Kind != models.DraftKindInvoice {
		t.Fatalf("kind = %s", d.Kind)
	}
	if d.Currency != models.CurrencyUSD {
		t.Errorf("currency = %s, want USD", d.Currency)
	}
	if d.Status != "sent" {
		t.Errorf("status = %q, want sent", d.Status)
	}
	requireTotal(t, d.Subtotal, "200000", "subtotal")
	requireTotal(t, d.DiscountAmount, "10000", "discount_amount")
	requireTotal(t, d.TaxAmount, "19000", "tax_amount")
	requireTotal(t, d.Total, "209000", "total")
}

func TestAssembleInvoiceFlattensDraft(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.DocumentNumber = "INV-200"
	d.CompanyId = "c-2"
	d.ClientName = "CV Pelanggan"
	d.Status = "bogus-status"
	d.Apply(models.SetItemName{Index: 0, Value: "Audit"})
	d.Apply(models.SetItemQuantity{Index: 0, Value: 1})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "5000000"})

	inv := models.AssembleInvoice(&d)
	if inv.ID == "" {
		t.Error("assembled invoice has no id")
	}
	if inv.InvoiceNumber != "INV-200" || inv.CompanyId != "c-2" {
		t.Errorf("header fields not copied: %+v", inv)
	}
	if inv.Status != models.InvoiceStatusDraft {
		t.Errorf("status = %s, want unknown normalized to draft", inv.Status)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(inv.Items))
	}
	if !inv.Items[0].Total.Equal(decimal.NewFromInt(5000000)) {
		t.Errorf("item total = %s, want 5000000", inv.Items[0].Total)
	}
	if !inv.Total.Equal(d.Total) {
		t.Errorf("invoice total = %s, want draft total %s", inv.Total, d.Total)
	}
}

func TestAssembleQuotationCarriesValidUntil(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindQuotation)
	d.DocumentNumber = "QUO-1"
	d.ValidUntil = "2025-04-30"
	d.Status = "accepted"
	d.Apply(models.SetItemName{Index: 0, Value: "Training"})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "750000"})

	q := models.AssembleQuotation(&d)
	if q.QuotationNumber != "QUO-1" || q.ValidUntil != "2025-04-30" {
		t.Errorf("quotation header = %+v", q)
	}
	if q.Status != models.QuotationStatusAccepted {
		t.Errorf("status = %s, want accepted", q.Status)
	}
}

func TestRecalculateDraft(t *testing.T) {
	rows := []models.NewDocumentItem{
		{Name: "Row A", Quantity: "3", UnitPrice: "1000"},
		{Name: "Row B", Quantity: "bad", UnitPrice: "9999"},
	}
	d := models.RecalculateDraft(models.DraftKindQuotation, rows, "11", "-4")

	requireTotal(t, d.Subtotal, "3000", "subtotal")
	requireTotal(t, d.DiscountAmount, "0", "discount_amount with clamped rate")
	requireTotal(t, d.TaxAmount, "330", "tax_amount")
	requireTotal(t, d.Total, "3330", "total")

	// Empty row list still yields the single blank row.
	empty := models.RecalculateDraft(models.DraftKindInvoice, nil, nil, nil)
	if len(empty.Items) != 1 {
		t.Errorf("empty recalculation has %d rows, want 1", len(empty.Items))
	}
	requireTotal(t, empty.Total, "0", "empty total")
}
