package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

// Item is a reusable catalog entry: a named product or service with a
// default unit price. Documents reference it by id only; deleting an item
// does not touch documents already composed from it.
type Item struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Description string          `gorm:"type:text" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Unit        string          `gorm:"size:50;default:'pcs'" json:"unit"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewItem struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	UnitPrice   interface{} `json:"unit_price"`
	Unit        string      `json:"unit"`
}

func (input *NewItem) fill(item *Item) {
	item.Name = input.Name
	item.Description = input.Description
	item.UnitPrice = utils.ParseDecimal(input.UnitPrice)
	item.Unit = input.Unit
	if item.Unit == "" {
		item.Unit = "pcs"
	}
}

func CreateItem(ctx context.Context, input *NewItem) (*Item, error) {
	db := config.GetDB()

	item := Item{ID: uuid.NewString()}
	input.fill(&item)

	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func GetItems(ctx context.Context) ([]*Item, error) {
	db := config.GetDB()

	var items []*Item
	if err := db.WithContext(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func GetItem(ctx context.Context, id string) (*Item, error) {
	db := config.GetDB()

	var item Item
	if err := db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func UpdateItem(ctx context.Context, id string, input *NewItem) (*Item, error) {
	db := config.GetDB()

	item, err := GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	input.fill(item)

	if err := db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeleteItem(ctx context.Context, id string) error {
	db := config.GetDB()

	result := db.WithContext(ctx).Delete(&Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
