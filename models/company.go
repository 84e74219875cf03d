package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/billing_backend/config"
	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

// Company is an issuer profile. Logo is stored inline as a base64 data URI.
type Company struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Address         string    `gorm:"type:text" json:"address"`
	Phone           string    `gorm:"size:50" json:"phone"`
	Email           string    `gorm:"size:255" json:"email"`
	Website         string    `gorm:"size:255" json:"website"`
	Motto           string    `gorm:"size:255" json:"motto"`
	Npwp            string    `gorm:"size:100" json:"npwp"`
	BankName        string    `gorm:"size:255" json:"bank_name"`
	BankAccount     string    `gorm:"size:100" json:"bank_account"`
	BankAccountName string    `gorm:"size:255" json:"bank_account_name"`
	Logo            string    `gorm:"type:longtext" json:"logo"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type NewCompany struct {
	Name            string `json:"name" binding:"required"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	Motto           string `json:"motto"`
	Npwp            string `json:"npwp"`
	BankName        string `json:"bank_name"`
	BankAccount     string `json:"bank_account"`
	BankAccountName string `json:"bank_account_name"`
	Logo            string `json:"logo"`
}

func (input *NewCompany) validate() error {
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("email is not valid")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("phone number is not valid")
		}
	}
	return nil
}

func CreateCompany(ctx context.Context, input *NewCompany) (*Company, error) {
	db := config.GetDB()

	if err := input.validate(); err != nil {
		return nil, err
	}

	company := Company{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Address:         input.Address,
		Phone:           input.Phone,
		Email:           input.Email,
		Website:         input.Website,
		Motto:           input.Motto,
		Npwp:            input.Npwp,
		BankName:        input.BankName,
		BankAccount:     input.BankAccount,
		BankAccountName: input.BankAccountName,
		Logo:            input.Logo,
	}

	if err := db.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func GetCompanies(ctx context.Context) ([]*Company, error) {
	db := config.GetDB()

	var companies []*Company
	if err := db.WithContext(ctx).Order("created_at").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func GetCompany(ctx context.Context, id string) (*Company, error) {
	db := config.GetDB()

	var company Company
	if err := db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func UpdateCompany(ctx context.Context, id string, input *NewCompany) (*Company, error) {
	db := config.GetDB()

	if err := input.validate(); err != nil {
		return nil, err
	}

	company, err := GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Address = input.Address
	company.Phone = input.Phone
	company.Email = input.Email
	company.Website = input.Website
	company.Motto = input.Motto
	company.Npwp = input.Npwp
	company.BankName = input.BankName
	company.BankAccount = input.BankAccount
	company.BankAccountName = input.BankAccountName
	company.Logo = input.Logo

	if err := db.WithContext(ctx).Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func DeleteCompany(ctx context.Context, id string) error {
	db := config.GetDB()

	result := db.WithContext(ctx).Delete(&Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PlaceholderCompany stands in for a deleted issuer. Documents keep only a
// company id; when it no longer resolves, previews and PDFs degrade to this
// profile instead of failing.
func PlaceholderCompany() *Company {
	return &Company{
		Name: "Company Information Not Available",
	}
}

// ResolveCompanyProfile never fails: a company that cannot be fetched
// resolves to the placeholder profile.
func ResolveCompanyProfile(ctx context.Context, id string) *Company {
	company, err := GetCompany(ctx, id)
	if err != nil {
		return PlaceholderCompany()
	}
	return company
}
