package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
)

type Invoice struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	InvoiceNumber     string          `gorm:"size:255;not null;index" json:"invoice_number"`
	CompanyId         string          `gorm:"size:36;not null;index" json:"company_id"`
	ClientName        string          `gorm:"size:255;not null" json:"client_name"`
	ClientAddress     string          `gorm:"type:text" json:"client_address"`
	ClientPhone       string          `gorm:"size:50" json:"client_phone"`
	ClientEmail       string          `gorm:"size:255" json:"client_email"`
	Date              string          `gorm:"size:20" json:"date"`
	DueDate           string          `gorm:"size:20" json:"due_date"`
	Items             []InvoiceItem   `gorm:"foreignKey:InvoiceId" json:"items"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	TaxRate           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_rate"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	DiscountRate      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_rate"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_amount"`
	Total             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	Currency          Currency        `gorm:"size:3;default:'IDR'" json:"currency"`
	Notes             string          `gorm:"type:text" json:"notes"`
	TemplateId        string          `gorm:"size:50;default:'template1'" json:"template_id"`
	Status            InvoiceStatus   `gorm:"size:20;default:'draft'" json:"status"`
	SignatureName     string          `gorm:"size:255" json:"signature_name"`
	SignaturePosition string          `gorm:"size:255" json:"signature_position"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type InvoiceItem struct {
	ID          int             `gorm:"primaryKey" json:"-"`
	InvoiceId   string          `gorm:"size:36;not null;index" json:"-"`
	ItemId      string          `gorm:"size:36" json:"item_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Unit        string          `gorm:"size:50;default:'pcs'" json:"unit"`
	Total       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
}

type NewInvoice struct {
	InvoiceNumber     string            `json:"invoice_number"`
	CompanyId         string            `json:"company_id"`
	ClientName        string            `json:"client_name"`
	ClientAddress     string            `json:"client_address"`
	ClientPhone       string            `json:"client_phone"`
	ClientEmail       string            `json:"client_email"`
	Date              string            `json:"date"`
	DueDate           string            `json:"due_date"`
	Items             []NewDocumentItem `json:"items"`
	TaxRate           interface{}       `json:"tax_rate"`
	DiscountRate      interface{}       `json:"discount_rate"`
	Currency          string            `json:"currency"`
	Notes             string            `json:"notes"`
	TemplateId        string            `json:"template_id"`
	Status            string            `json:"status"`
	SignatureName     string            `json:"signature_name"`
	SignaturePosition string            `json:"signature_position"`
}

// Draft builds the composition-engine draft from the wire payload. Totals
// submitted by the client are ignored; the draft recomputes them so the
// server figures are authoritative.
func (input *NewInvoice) Draft() DocumentDraft {
	d := NewDocumentDraft(DraftKindInvoice)
	d.DocumentNumber = input.InvoiceNumber
	d.CompanyId = input.CompanyId
	d.ClientName = input.ClientName
	d.ClientAddress = input.ClientAddress
	d.ClientPhone = input.ClientPhone
	d.ClientEmail = input.ClientEmail
	d.Date = input.Date
	d.DueDate = input.DueDate
	d.Currency = ParseCurrency(input.Currency)
	d.Notes = input.Notes
	if input.TemplateId != "" {
		d.TemplateId = input.TemplateId
	}
	d.Status = string(NormalizeInvoiceStatus(input.Status))
	d.SignatureName = input.SignatureName
	d.SignaturePosition = input.SignaturePosition
	if len(input.Items) > 0 {
		d.Items = draftItemsFromInput(input.Items)
	}
	draftRates(&d, input.TaxRate, input.DiscountRate)
	d.RecomputeTotals()
	return d
}

func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {
	db := config.GetDB()

	draft := input.Draft()
	if err := ValidateDraft(&draft); err != nil {
		return nil, err
	}

	invoice := AssembleInvoice(&draft)
	if err := db.WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func GetInvoices(ctx context.Context) ([]*Invoice, error) {
	db := config.GetDB()

	var invoices []*Invoice
	if err := db.WithContext(ctx).Preload("Items").Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	db := config.GetDB()

	var invoice Invoice
	if err := db.WithContext(ctx).Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice replaces the whole document, matching PUT semantics: the
// payload is re-validated and re-assembled, and the item rows are rewritten.
func UpdateInvoice(ctx context.Context, id string, input *NewInvoice) (*Invoice, error) {
	db := config.GetDB()

	existing, err := GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := input.Draft()
	if err := ValidateDraft(&draft); err != nil {
		return nil, err
	}

	updated := AssembleInvoice(&draft)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	for i := range updated.Items {
		updated.Items[i].InvoiceId = existing.ID
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", existing.ID).Delete(&InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Save(updated).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteInvoice(ctx context.Context, id string) error {
	db := config.GetDB()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Invoice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("invoice_id = ?", id).Delete(&InvoiceItem{}).Error
	})
}

// ResolveInvoiceForRender fetches an invoice together with its issuer
// profile. A missing invoice is an error; a missing company degrades to the
// placeholder profile so the preview still renders.
func ResolveInvoiceForRender(ctx context.Context, id string) (*Invoice, *Company, error) {
	invoice, err := GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return invoice, ResolveCompanyProfile(ctx, invoice.CompanyId), nil
}
