package models

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

// LineItem is one priced row inside a document draft. Total is derived from
// Quantity and UnitPrice after every mutation and is never set directly.
type LineItem struct {
	ItemId      string          `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"`
	Total       decimal.Decimal `json:"total"`
}

func NewBlankLineItem() LineItem {
	return LineItem{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
		Unit:      "pcs",
		Total:     decimal.Zero,
	}
}

func (li *LineItem) SetName(v string) {
	li.Name = v
}

func (li *LineItem) SetDescription(v string) {
	li.Description = v
}

func (li *LineItem) SetUnit(v string) {
	li.Unit = v
}

func (li *LineItem) SetQuantity(v interface{}) {
	li.Quantity = utils.ParseDecimal(v)
	li.recomputeTotal()
}

func (li *LineItem) SetUnitPrice(v interface{}) {
	li.UnitPrice = utils.ParseDecimal(v)
	li.recomputeTotal()
}

// BindCatalogItem seeds the row from a catalog entry. Name, description,
// unit price and unit come from the entry; the current quantity is preserved
// and the total recomputed against the new price. A nil entry (catalog id no
// longer resolvable) leaves the row untouched.
func (li *LineItem) BindCatalogItem(entry *Item) {
	if entry == nil {
		return
	}
	li.ItemId = entry.ID
	li.Name = entry.Name
	li.Description = entry.Description
	li.UnitPrice = entry.UnitPrice
	li.Unit = entry.Unit
	li.recomputeTotal()
}

func (li *LineItem) recomputeTotal() {
	li.Total = li.Quantity.Mul(li.UnitPrice)
}
