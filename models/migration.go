package models

import (
	"log"

	"bitbucket.org/mmdatafocus/billing_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Company{},
		&Item{},
		&Invoice{}, &InvoiceItem{},
		&Quotation{}, &QuotationItem{},
		&Letter{}, &Signatory{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
