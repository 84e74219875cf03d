package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
)

// Letter is an outgoing business letter with one or more signatories.
type Letter struct {
	ID                string      `gorm:"primaryKey;size:36" json:"id"`
	LetterNumber      string      `gorm:"size:255;not null;index" json:"letter_number"`
	CompanyId         string      `gorm:"size:36;not null;index" json:"company_id"`
	Date              string      `gorm:"size:20" json:"date"`
	Subject           string      `gorm:"size:255;not null" json:"subject"`
	LetterType        LetterType  `gorm:"size:20;default:'general'" json:"letter_type"`
	RecipientName     string      `gorm:"size:255;not null" json:"recipient_name"`
	RecipientPosition string      `gorm:"size:255" json:"recipient_position"`
	RecipientAddress  string      `gorm:"type:text" json:"recipient_address"`
	Content           string      `gorm:"type:text" json:"content"`
	AttachmentsCount  int         `gorm:"default:0" json:"attachments_count"`
	CcList            string      `gorm:"type:text" json:"cc_list"`
	Signatories       []Signatory `gorm:"foreignKey:LetterId" json:"signatories"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

type Signatory struct {
	ID             int    `gorm:"primaryKey" json:"-"`
	LetterId       string `gorm:"size:36;not null;index" json:"-"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Position       string `gorm:"size:255" json:"position"`
	SignatureImage string `gorm:"type:longtext" json:"signature_image"`
}

type NewSignatory struct {
	Name           string `json:"name" binding:"required"`
	Position       string `json:"position"`
	SignatureImage string `json:"signature_image"`
}

type NewLetter struct {
	LetterNumber      string         `json:"letter_number" binding:"required"`
	CompanyId         string         `json:"company_id" binding:"required"`
	Date              string         `json:"date" binding:"required"`
	Subject           string         `json:"subject" binding:"required"`
	LetterType        string         `json:"letter_type"`
	RecipientName     string         `json:"recipient_name" binding:"required"`
	RecipientPosition string         `json:"recipient_position"`
	RecipientAddress  string         `json:"recipient_address"`
	Content           string         `json:"content" binding:"required"`
	AttachmentsCount  int            `json:"attachments_count"`
	CcList            string         `json:"cc_list"`
	Signatories       []NewSignatory `json:"signatories" binding:"dive"`
}

func (input *NewLetter) fill(letter *Letter) {
	letter.LetterNumber = input.LetterNumber
	letter.CompanyId = input.CompanyId
	letter.Date = input.Date
	letter.Subject = input.Subject
	letter.LetterType = NormalizeLetterType(input.LetterType)
	letter.RecipientName = input.RecipientName
	letter.RecipientPosition = input.RecipientPosition
	letter.RecipientAddress = input.RecipientAddress
	letter.Content = input.Content
	letter.AttachmentsCount = input.AttachmentsCount
	letter.CcList = input.CcList

	signatories := make([]Signatory, 0, len(input.Signatories))
	for _, s := range input.Signatories {
		signatories = append(signatories, Signatory{
			LetterId:       letter.ID,
			Name:           s.Name,
			Position:       s.Position,
			SignatureImage: s.SignatureImage,
		})
	}
	letter.Signatories = signatories
}

func CreateLetter(ctx context.Context, input *NewLetter) (*Letter, error) {
	db := config.GetDB()

	letter := Letter{ID: uuid.NewString()}
	input.fill(&letter)

	if err := db.WithContext(ctx).Create(&letter).Error; err != nil {
		return nil, err
	}
	return &letter, nil
}

func GetLetters(ctx context.Context) ([]*Letter, error) {
	db := config.GetDB()

	var letters []*Letter
	if err := db.WithContext(ctx).Preload("Signatories").Order("created_at desc").Find(&letters).Error; err != nil {
		return nil, err
	}
	return letters, nil
}

func GetLetter(ctx context.Context, id string) (*Letter, error) {
	db := config.GetDB()

	var letter Letter
	if err := db.WithContext(ctx).Preload("Signatories").First(&letter, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &letter, nil
}

func UpdateLetter(ctx context.Context, id string, input *NewLetter) (*Letter, error) {
	db := config.GetDB()

	existing, err := GetLetter(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := Letter{ID: existing.ID, CreatedAt: existing.CreatedAt}
	input.fill(&updated)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("letter_id = ?", existing.ID).Delete(&Signatory{}).Error; err != nil {
			return err
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteLetter(ctx context.Context, id string) error {
	db := config.GetDB()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Letter{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("letter_id = ?", id).Delete(&Signatory{}).Error
	})
}

func ResolveLetterForRender(ctx context.Context, id string) (*Letter, *Company, error) {
	letter, err := GetLetter(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return letter, ResolveCompanyProfile(ctx, letter.CompanyId), nil
}
