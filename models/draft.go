package models

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

type DraftKind string

const (
	DraftKindInvoice   DraftKind = "invoice"
	DraftKindQuotation DraftKind = "quotation"
)

// DocumentDraft is an in-progress invoice or quotation. The two kinds share
// the whole composition engine and differ only in the secondary date
// (due date vs. valid until) and the status vocabulary.
//
// The four derived fields at the bottom are recomputed from scratch after
// every mutation; they are never patched incrementally, so they cannot drift
// from the item rows.
type DocumentDraft struct {
	Kind DraftKind `json:"-"`

	DocumentNumber string `json:"document_number"`
	CompanyId      string `json:"company_id"`
	ClientName     string `json:"client_name"`
	ClientAddress  string `json:"client_address"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	Date           string `json:"date"`
	DueDate        string `json:"due_date,omitempty"`
	ValidUntil     string `json:"valid_until,omitempty"`

	Currency     Currency        `json:"currency"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status"`
	TemplateId   string          `json:"template_id"`

	SignatureName     string `json:"signature_name"`
	SignaturePosition string `json:"signature_position"`

	Items []LineItem `json:"items"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// NewDocumentDraft starts a draft with a single blank row; a draft never has
// an empty item list.
func NewDocumentDraft(kind DraftKind) DocumentDraft {
	return DocumentDraft{
		Kind:       kind,
		Currency:   CurrencyIDR,
		Status:     "draft",
		TemplateId: "template1",
		Items:      []LineItem{NewBlankLineItem()},
	}
}

// DraftEdit is the closed set of edit operations a user action can apply to
// a draft. Every edit goes through Apply, which recomputes the derived
// totals, so the displayed figures are never stale relative to the last edit.
type DraftEdit interface {
	apply(d *DocumentDraft)
}

type AddItem struct{}

type RemoveItem struct {
	Index int
}

type SetItemName struct {
	Index int
	Value string
}

type SetItemDescription struct {
	Index int
	Value string
}

type SetItemUnit struct {
	Index int
	Value string
}

type SetItemQuantity struct {
	Index int
	Value interface{}
}

type SetItemUnitPrice struct {
	Index int
	Value interface{}
}

// BindItem rebinds the row at Index to a catalog entry. A nil Entry is a
// no-op: a stale catalog reference degrades silently instead of erroring.
type BindItem struct {
	Index int
	Entry *Item
}

type SetTaxRate struct {
	Value interface{}
}

type SetDiscountRate struct {
	Value interface{}
}

func (AddItem) apply(d *DocumentDraft) {
	d.Items = append(d.Items, NewBlankLineItem())
}

func (e RemoveItem) apply(d *DocumentDraft) {
	// Minimum one row: removing the last remaining item is a no-op.
	if len(d.Items) <= 1 {
		return
	}
	if e.Index < 0 || e.Index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:e.Index], d.Items[e.Index+1:]...)
}

func (e SetItemName) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.SetName(e.Value)
	}
}

func (e SetItemDescription) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.SetDescription(e.Value)
	}
}

func (e SetItemUnit) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.SetUnit(e.Value)
	}
}

func (e SetItemQuantity) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.SetQuantity(e.Value)
	}
}

func (e SetItemUnitPrice) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.SetUnitPrice(e.Value)
	}
}

func (e BindItem) apply(d *DocumentDraft) {
	if item := d.item(e.Index); item != nil {
		item.BindCatalogItem(e.Entry)
	}
}

func (e SetTaxRate) apply(d *DocumentDraft) {
	d.TaxRate = utils.ParseRate(e.Value)
}

func (e SetDiscountRate) apply(d *DocumentDraft) {
	d.DiscountRate = utils.ParseRate(e.Value)
}

// Apply runs one edit and recomputes the derived totals.
func (d *DocumentDraft) Apply(edit DraftEdit) {
	edit.apply(d)
	d.RecomputeTotals()
}

func (d *DocumentDraft) item(index int) *LineItem {
	if index < 0 || index >= len(d.Items) {
		return nil
	}
	return &d.Items[index]
}

// RecomputeTotals rebuilds subtotal, discount, tax and total from the item
// rows and the two rates:
//
//	subtotal        = sum(item.total)
//	discount_amount = subtotal * discount_rate / 100
//	tax_amount      = (subtotal - discount_amount) * tax_rate / 100
//	total           = subtotal - discount_amount + tax_amount
//
// Pure with respect to its inputs; calling it twice in a row yields
// identical results.
func (d *DocumentDraft) RecomputeTotals() {
	subtotal := decimal.Zero
	for i := range d.Items {
		subtotal = subtotal.Add(d.Items[i].Total)
	}
	discountAmount := utils.CalculateDiscountAmount(subtotal, d.DiscountRate)
	taxAmount := utils.CalculateTaxAmount(subtotal.Sub(discountAmount), d.TaxRate)

	d.Subtotal = subtotal
	d.DiscountAmount = discountAmount
	d.TaxAmount = taxAmount
	d.Total = subtotal.Sub(discountAmount).Add(taxAmount)
}
