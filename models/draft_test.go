package models_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

func requireTotal(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

func TestNewDocumentDraftStartsWithBlankRow(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)

	if len(d.Items) != 1 {
		t.Fatalf("new draft has %d items, want 1", len(d.Items))
	}
	row := d.Items[0]
	if !row.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Errorf("blank row quantity = %s, want 1", row.Quantity)
	}
	if !row.UnitPrice.IsZero() || !row.Total.IsZero() {
		t.Errorf("blank row price/total = %s/%s, want 0/0", row.UnitPrice, row.Total)
	}
	if row.Unit != "pcs" {
		t.Errorf("blank row unit = %q, want pcs", row.Unit)
	}
	if d.Currency != models.CurrencyIDR {
		t.Errorf("default currency = %s, want IDR", d.Currency)
	}
	if d.Status != "draft" {
		t.Errorf("default status = %q, want draft", d.Status)
	}
}

func TestDraftTotalsEndToEnd(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.Apply(models.SetItemName{Index: 0, Value: "Consulting"})
	d.Apply(models.SetItemQuantity{Index: 0, Value: "2"})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "100,000"})
	d.Apply(models.SetDiscountRate{Value: "5"})
	d.Apply(models.SetTaxRate{Value: 10})

	requireTotal(t, d.Subtotal, "200000", "subtotal")
	requireTotal(t, d.DiscountAmount, "10000", "discount_amount")
	requireTotal(t, d.TaxAmount, "19000", "tax_amount")
	requireTotal(t, d.Total, "209000", "total")
}

func TestRecomputeTotalsIdempotent(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindQuotation)
	d.Apply(models.SetItemQuantity{Index: 0, Value: 3})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "2500.75"})
	d.Apply(models.SetTaxRate{Value: "11"})
	d.Apply(models.SetDiscountRate{Value: "2.5"})

	first := d
	d.RecomputeTotals()
	d.RecomputeTotals()

	if !d.Subtotal.Equal(first.Subtotal) || !d.DiscountAmount.Equal(first.DiscountAmount) ||
		!d.TaxAmount.Equal(first.TaxAmount) || !d.Total.Equal(first.Total) {
		t.Errorf("recompute is not idempotent: %s/%s/%s/%s vs %s/%s/%s/%s",
			d.Subtotal, d.DiscountAmount, d.TaxAmount, d.Total,
			first.Subtotal, first.DiscountAmount, first.TaxAmount, first.Total)
	}
}

func TestTotalIdentityOverEditSequence(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	edits := []models.DraftEdit{
		models.SetItemQuantity{Index: 0, Value: "4"},
		models.SetItemUnitPrice{Index: 0, Value: "750"},
		models.AddItem{},
		models.SetItemQuantity{Index: 1, Value: "1.5"},
		models.SetItemUnitPrice{Index: 1, Value: "1000"},
		models.SetDiscountRate{Value: "10"},
		models.SetTaxRate{Value: "11"},
		models.AddItem{},
		models.RemoveItem{Index: 2},
		models.SetItemUnitPrice{Index: 0, Value: "800"},
	}
	for _, e := range edits {
		d.Apply(e)

		sum := decimal.Zero
		for _, row := range d.Items {
			if !row.Total.Equal(row.Quantity.Mul(row.UnitPrice)) {
				t.Fatalf("row total %s != qty*price %s", row.Total, row.Quantity.Mul(row.UnitPrice))
			}
			sum = sum.Add(row.Total)
		}
		if !d.Subtotal.Equal(sum) {
			t.Fatalf("subtotal %s != sum of row totals %s", d.Subtotal, sum)
		}
		want := d.Subtotal.Sub(d.DiscountAmount).Add(d.TaxAmount)
		if !d.Total.Equal(want) {
			t.Fatalf("total %s != subtotal - discount + tax %s", d.Total, want)
		}
	}
}

func TestRemoveItemKeepsMinimumOneRow(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.Apply(models.RemoveItem{Index: 0})
	if len(d.Items) != 1 {
		t.Fatalf("removing the only row left %d items, want 1", len(d.Items))
	}

	d.Apply(models.AddItem{})
	d.Apply(models.SetItemUnitPrice{Index: 1, Value: "500"})
	d.Apply(models.RemoveItem{Index: 1})
	if len(d.Items) != 1 {
		t.Fatalf("removing second row left %d items, want 1", len(d.Items))
	}
	if !d.Subtotal.IsZero() {
		t.Errorf("subtotal after removal = %s, want 0", d.Subtotal)
	}

	// Out-of-range indexes are ignored.
	d.Apply(models.AddItem{})
	d.Apply(models.RemoveItem{Index: 7})
	if len(d.Items) != 2 {
		t.Fatalf("out-of-range removal left %d items, want 2", len(d.Items))
	}
}

func TestBindItemPreservesQuantity(t *testing.T) {
	entry := &models.Item{
		ID:          "cat-1",
		Name:        "Laptop",
		Description: "14 inch",
		UnitPrice:   decimal.NewFromInt(1000),
		Unit:        "unit",
	}

	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.Apply(models.SetItemQuantity{Index: 0, Value: 3})
	d.Apply(models.BindItem{Index: 0, Entry: entry})

	row := d.Items[0]
	if row.ItemId != "cat-1" || row.Name != "Laptop" || row.Unit != "unit" {
		t.Errorf("bound row = %+v, want catalog fields applied", row)
	}
	if !row.Quantity.Equal(decimal.NewFromInt(3)) {
		t.Errorf("bound row quantity = %s, want preserved 3", row.Quantity)
	}
	requireTotal(t, row.Total, "3000", "bound row total")
	requireTotal(t, d.Subtotal, "3000", "subtotal after bind")
}

func TestBindItemNilEntryIsNoOp(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.Apply(models.SetItemName{Index: 0, Value: "Manual row"})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "250"})
	before := d.Items[0]

	d.Apply(models.BindItem{Index: 0, Entry: nil})

	after := d.Items[0]
	if after.Name != before.Name || !after.UnitPrice.Equal(before.UnitPrice) || !after.Total.Equal(before.Total) {
		t.Errorf("nil bind changed the row: before %+v, after %+v", before, after)
	}
}

func TestMalformedInputCoercesToZero(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.Apply(models.SetItemQuantity{Index: 0, Value: "abc"})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "100"})

	if !d.Items[0].Quantity.IsZero() {
		t.Errorf("quantity = %s, want 0 for malformed input", d.Items[0].Quantity)
	}
	requireTotal(t, d.Items[0].Total, "0", "row total")

	d.Apply(models.SetTaxRate{Value: "not-a-number"})
	if !d.TaxRate.IsZero() {
		t.Errorf("tax rate = %s, want 0 for malformed input", d.TaxRate)
	}
	d.Apply(models.SetDiscountRate{Value: "-15"})
	if !d.DiscountRate.IsZero() {
		t.Errorf("discount rate = %s, want negative clamped to 0", d.DiscountRate)
	}
}

func TestValidateDraftPrecedence(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)

	err := models.ValidateDraft(&d)
	var verr *models.DraftValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateDraft returned %v, want *DraftValidationError", err)
	}
	wantFields := []string{"invoice_number", "company_id", "client_name", "items"}
	if len(verr.Errors) != len(wantFields) {
		t.Fatalf("got %d errors, want %d: %+v", len(verr.Errors), len(wantFields), verr.Errors)
	}
	for i, f := range wantFields {
		if verr.Errors[i].Field != f {
			t.Errorf("error[%d].Field = %q, want %q", i, verr.Errors[i].Field, f)
		}
	}
	if verr.Error() != "please enter a invoice number" {
		t.Errorf("user-visible message = %q, want first failure", verr.Error())
	}

	// Fixing fields in order peels errors off the front.
	d.DocumentNumber = "INV-001"
	err = models.ValidateDraft(&d)
	if !errors.As(err, &verr) || verr.Errors[0].Field != "company_id" {
		t.Fatalf("after setting number, first error = %+v, want company_id", err)
	}

	d.CompanyId = "c-1"
	d.ClientName = "PT Client"
	d.Apply(models.SetItemName{Index: 0, Value: "Service"})
	if err := models.ValidateDraft(&d); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}

func TestValidateDraftQuotationFieldName(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindQuotation)
	err := models.ValidateDraft(&d)
	var verr *models.DraftValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateDraft returned %v, want *DraftValidationError", err)
	}
	if verr.Errors[0].Field != "quotation_number" {
		t.Errorf("first field = %q, want quotation_number", verr.Errors[0].Field)
	}
}

func TestValidateDraftAcceptsZeroQuantity(t *testing.T) {
	d := models.NewDocumentDraft(models.DraftKindInvoice)
	d.DocumentNumber = "INV-002"
	d.CompanyId = "c-1"
	d.ClientName = "PT Client"
	d.Apply(models.SetItemName{Index: 0, Value: "Retainer"})
	d.Apply(models.SetItemQuantity{Index: 0, Value: 0})
	d.Apply(models.SetItemUnitPrice{Index: 0, Value: "50000"})

	if err := models.ValidateDraft(&d); err != nil {
		t.Fatalf("zero quantity rejected: %v", err)
	}
	requireTotal(t, d.Total, "0", "total with zero quantity")
}
