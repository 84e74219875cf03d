package models

import (
	"github.com/google/uuid"

	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

// NewDocumentItem is the wire shape of one draft row. Quantity and unit
// price are untyped on purpose: form fields deliver strings and malformed
// values coerce to zero instead of failing the request.
type NewDocumentItem struct {
	ItemId      string      `json:"item_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Quantity    interface{} `json:"quantity"`
	UnitPrice   interface{} `json:"unit_price"`
	Unit        string      `json:"unit"`
}

func draftItemsFromInput(input []NewDocumentItem) []LineItem {
	items := make([]LineItem, 0, len(input))
	for _, in := range input {
		li := NewBlankLineItem()
		li.ItemId = in.ItemId
		li.SetName(in.Name)
		li.SetDescription(in.Description)
		if in.Unit != "" {
			li.SetUnit(in.Unit)
		}
		li.SetQuantity(in.Quantity)
		li.SetUnitPrice(in.UnitPrice)
		items = append(items, li)
	}
	return items
}

// AssembleInvoice flattens a validated draft into the persisted invoice
// shape. It performs no validation itself; callers run ValidateDraft first.
// The derived totals are taken from the draft's latest recomputation and the
// rates have already been coerced to decimals by the draft reducer.
func AssembleInvoice(d *DocumentDraft) *Invoice {
	items := make([]InvoiceItem, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, InvoiceItem{
			ItemId:      li.ItemId,
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Unit:        li.Unit,
			Total:       li.Total,
		})
	}
	return &Invoice{
		ID:                uuid.NewString(),
		InvoiceNumber:     d.DocumentNumber,
		CompanyId:         d.CompanyId,
		ClientName:        d.ClientName,
		ClientAddress:     d.ClientAddress,
		ClientPhone:       d.ClientPhone,
		ClientEmail:       d.ClientEmail,
		Date:              d.Date,
		DueDate:           d.DueDate,
		Items:             items,
		Subtotal:          d.Subtotal,
		TaxRate:           d.TaxRate,
		TaxAmount:         d.TaxAmount,
		DiscountRate:      d.DiscountRate,
		DiscountAmount:    d.DiscountAmount,
		Total:             d.Total,
		Currency:          d.Currency,
		Notes:             d.Notes,
		TemplateId:        d.TemplateId,
		Status:            NormalizeInvoiceStatus(d.Status),
		SignatureName:     d.SignatureName,
		SignaturePosition: d.SignaturePosition,
	}
}

// AssembleQuotation is the quotation counterpart of AssembleInvoice; the two
// kinds share the engine and differ only in the secondary date and status
// vocabulary.
func AssembleQuotation(d *DocumentDraft) *Quotation {
	items := make([]QuotationItem, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, QuotationItem{
			ItemId:      li.ItemId,
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Unit:        li.Unit,
			Total:       li.Total,
		})
	}
	return &Quotation{
		ID:                uuid.NewString(),
		QuotationNumber:   d.DocumentNumber,
		CompanyId:         d.CompanyId,
		ClientName:        d.ClientName,
		ClientAddress:     d.ClientAddress,
		ClientPhone:       d.ClientPhone,
		ClientEmail:       d.ClientEmail,
		Date:              d.Date,
		ValidUntil:        d.ValidUntil,
		Items:             items,
		Subtotal:          d.Subtotal,
		TaxRate:           d.TaxRate,
		TaxAmount:         d.TaxAmount,
		DiscountRate:      d.DiscountRate,
		DiscountAmount:    d.DiscountAmount,
		Total:             d.Total,
		Currency:          d.Currency,
		Notes:             d.Notes,
		TemplateId:        d.TemplateId,
		Status:            NormalizeQuotationStatus(d.Status),
		SignatureName:     d.SignatureName,
		SignaturePosition: d.SignaturePosition,
	}
}

func draftRates(d *DocumentDraft, taxRate, discountRate interface{}) {
	d.TaxRate = utils.ParseRate(taxRate)
	d.DiscountRate = utils.ParseRate(discountRate)
}

// RecalculateDraft rebuilds a draft from wire rows and rates and returns it
// with every derived figure freshly computed. Clients call this to keep their
// previews consistent with the math applied at submission time.
func RecalculateDraft(kind DraftKind, rows []NewDocumentItem, taxRate, discountRate interface{}) DocumentDraft {
	d := NewDocumentDraft(kind)
	if len(rows) > 0 {
		d.Items = draftItemsFromInput(rows)
	}
	draftRates(&d, taxRate, discountRate)
	d.RecomputeTotals()
	return d
}
