package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
)

type Quotation struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	QuotationNumber   string          `gorm:"size:255;not null;index" json:"quotation_number"`
	CompanyId         string          `gorm:"size:36;not null;index" json:"company_id"`
	ClientName        string          `gorm:"size:255;not null" json:"client_name"`
	ClientAddress     string          `gorm:"type:text" json:"client_address"`
	ClientPhone       string          `gorm:"size:50" json:"client_phone"`
	ClientEmail       string          `gorm:"size:255" json:"client_email"`
	Date              string          `gorm:"size:20" json:"date"`
	ValidUntil        string          `gorm:"size:20" json:"valid_until"`
	Items             []QuotationItem `gorm:"foreignKey:QuotationId" json:"items"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	TaxRate           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_rate"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	DiscountRate      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_rate"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_amount"`
	Total             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	Currency          Currency        `gorm:"size:3;default:'IDR'" json:"currency"`
	Notes             string          `gorm:"type:text" json:"notes"`
	TemplateId        string          `gorm:"size:50;default:'template1'" json:"template_id"`
	Status            QuotationStatus `gorm:"size:20;default:'draft'" json:"status"`
	SignatureName     string          `gorm:"size:255" json:"signature_name"`
	SignaturePosition string          `gorm:"size:255" json:"signature_position"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type QuotationItem struct {
	ID          int             `gorm:"primaryKey" json:"-"`
	QuotationId string          `gorm:"size:36;not null;index" json:"-"`
	ItemId      string          `gorm:"size:36" json:"item_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Unit        string          `gorm:"size:50;default:'pcs'" json:"unit"`
	Total       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
}

type NewQuotation struct {
	QuotationNumber   string            `json:"quotation_number"`
	CompanyId         string            `json:"company_id"`
	ClientName        string            `json:"client_name"`
	ClientAddress     string            `json:"client_address"`
	ClientPhone       string            `json:"client_phone"`
	ClientEmail       string            `json:"client_email"`
	Date              string            `json:"date"`
	ValidUntil        string            `json:"valid_until"`
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

func (input *NewQuotation) Draft() DocumentDraft {
	d := NewDocumentDraft(DraftKindQuotation)
	d.DocumentNumber = input.QuotationNumber
	d.CompanyId = input.CompanyId
	d.ClientName = input.ClientName
	d.ClientAddress = input.ClientAddress
	d.ClientPhone = input.ClientPhone
	d.ClientEmail = input.ClientEmail
	d.Date = input.Date
	d.ValidUntil = input.ValidUntil
	d.Currency = ParseCurrency(input.Currency)
	d.Notes = input.Notes
	if input.TemplateId != "" {
		d.TemplateId = input.TemplateId
	}
	d.Status = string(NormalizeQuotationStatus(input.Status))
	d.SignatureName = input.SignatureName
	d.SignaturePosition = input.SignaturePosition
	if len(input.Items) > 0 {
		d.Items = draftItemsFromInput(input.Items)
	}
	draftRates(&d, input.TaxRate, input.DiscountRate)
	d.RecomputeTotals()
	return d
}

func CreateQuotation(ctx context.Context, input *NewQuotation) (*Quotation, error) {
	db := config.GetDB()

	draft := input.Draft()
	if err := ValidateDraft(&draft); err != nil {
		return nil, err
	}

	quotation := AssembleQuotation(&draft)
	if err := db.WithContext(ctx).Create(quotation).Error; err != nil {
		return nil, err
	}
	return quotation, nil
}

func GetQuotations(ctx context.Context) ([]*Quotation, error) {
	db := config.GetDB()

	var quotations []*Quotation
	if err := db.WithContext(ctx).Preload("Items").Order("created_at desc").Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

func GetQuotation(ctx context.Context, id string) (*Quotation, error) {
	db := config.GetDB()

	var quotation Quotation
	if err := db.WithContext(ctx).Preload("Items").First(&quotation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quotation, nil
}

func UpdateQuotation(ctx context.Context, id string, input *NewQuotation) (*Quotation, error) {
	db := config.GetDB()

	existing, err := GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := input.Draft()
	if err := ValidateDraft(&draft); err != nil {
		return nil, err
	}

	updated := AssembleQuotation(&draft)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	for i := range updated.Items {
		updated.Items[i].QuotationId = existing.ID
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", existing.ID).Delete(&QuotationItem{}).Error; err != nil {
			return err
		}
		return tx.Save(updated).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteQuotation(ctx context.Context, id string) error {
	db := config.GetDB()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Quotation{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("quotation_id = ?", id).Delete(&QuotationItem{}).Error
	})
}

func ResolveQuotationForRender(ctx context.Context, id string) (*Quotation, *Company, error) {
	quotation, err := GetQuotation(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return quotation, ResolveCompanyProfile(ctx, quotation.CompanyId), nil
}
