package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

// Register exports: one row per document, amounts as raw numbers so the
// sheet stays sortable. Display formatting is left to the spreadsheet.

var registerHeader = []string{"Number", "Date", "Client", "Status", "Currency", "Subtotal", "Discount", "Tax", "Total"}

func writeHeader(f *excelize.File, sheet string) error {
	for i, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func BuildInvoiceRegister(invoices []*models.Invoice) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Invoices"); err != nil {
		return nil, err
	}
	if err := writeHeader(f, "Invoices"); err != nil {
		return nil, err
	}
	for i, inv := range invoices {
		subtotal, _ := inv.Subtotal.Float64()
		discount, _ := inv.DiscountAmount.Float64()
		tax, _ := inv.TaxAmount.Float64()
		total, _ := inv.Total.Float64()
		err := writeRow(f, "Invoices", i+2, []interface{}{
			inv.InvoiceNumber,
			inv.Date,
			inv.ClientName,
			string(inv.Status),
			string(inv.Currency),
			subtotal,
			discount,
			tax,
			total,
		})
		if err != nil {
			return nil, fmt.Errorf("write invoice row %d: %w", i+2, err)
		}
	}
	return f.WriteToBuffer()
}

func BuildQuotationRegister(quotations []*models.Quotation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Quotations"); err != nil {
		return nil, err
	}
	if err := writeHeader(f, "Quotations"); err != nil {
		return nil, err
	}
	for i, q := range quotations {
		subtotal, _ := q.Subtotal.Float64()
		discount, _ := q.DiscountAmount.Float64()
		tax, _ := q.TaxAmount.Float64()
		total, _ := q.Total.Float64()
		err := writeRow(f, "Quotations", i+2, []interface{}{
			q.QuotationNumber,
			q.Date,
			q.ClientName,
			string(q.Status),
			string(q.Currency),
			subtotal,
			discount,
			tax,
			total,
		})
		if err != nil {
			return nil, fmt.Errorf("write quotation row %d: %w", i+2, err)
		}
	}
	return f.WriteToBuffer()
}
