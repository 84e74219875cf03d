// Package pdfgen renders finalized documents to A4 PDFs. It consumes the
// persisted document shape as-is: totals are taken from the record, never
// recomputed here.
package pdfgen

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

type themeColor struct {
	r, g, b int
}

var (
	invoiceTheme   = themeColor{30, 64, 175}  // blue
	quotationTheme = themeColor{5, 150, 105}  // green
	letterTheme    = themeColor{51, 65, 85}   // slate
)

type documentRow struct {
	Name        string
	Description string
	Qty         string
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

type documentData struct {
	Title          string
	Theme          themeColor
	NumberLabel    string
	Number         string
	Date           string
	SecondaryLabel string
	SecondaryDate  string
	ClientName     string
	Currency       models.Currency
	Rows           []documentRow
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	Notes          string
	SignatureName  string
	SignaturePos   string
}

// Invoice renders an invoice PDF. The company may be the placeholder
// profile; rendering must not depend on the issuer still existing.
func Invoice(inv *models.Invoice, company *models.Company) ([]byte, error) {
	rows := make([]documentRow, 0, len(inv.Items))
	for _, item := range inv.Items {
		rows = append(rows, documentRow{
			Name:        item.Name,
			Description: item.Description,
			Qty:         item.Quantity.String() + " " + item.Unit,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	data := documentData{
		Title:          "INVOICE",
		Theme:          invoiceTheme,
		NumberLabel:    "Invoice Number:",
		Number:         inv.InvoiceNumber,
		Date:           inv.Date,
		SecondaryLabel: "Due Date:",
		SecondaryDate:  inv.DueDate,
		ClientName:     inv.ClientName,
		Currency:       inv.Currency,
		Rows:           rows,
		Subtotal:       inv.Subtotal,
		DiscountRate:   inv.DiscountRate,
		DiscountAmount: inv.DiscountAmount,
		TaxRate:        inv.TaxRate,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		Notes:          inv.Notes,
		SignatureName:  inv.SignatureName,
		SignaturePos:   inv.SignaturePosition,
	}
	return renderDocument(&data, company)
}

func Quotation(q *models.Quotation, company *models.Company) ([]byte, error) {
	rows := make([]documentRow, 0, len(q.Items))
	for _, item := range q.Items {
		rows = append(rows, documentRow{
			Name:        item.Name,
			Description: item.Description,
			Qty:         item.Quantity.String() + " " + item.Unit,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	data := documentData{
		Title:          "QUOTATION",
		Theme:          quotationTheme,
		NumberLabel:    "Quotation Number:",
		Number:         q.QuotationNumber,
		Date:           q.Date,
		SecondaryLabel: "Valid Until:",
		SecondaryDate:  q.ValidUntil,
		ClientName:     q.ClientName,
		Currency:       q.Currency,
		Rows:           rows,
		Subtotal:       q.Subtotal,
		DiscountRate:   q.DiscountRate,
		DiscountAmount: q.DiscountAmount,
		TaxRate:        q.TaxRate,
		TaxAmount:      q.TaxAmount,
		Total:          q.Total,
		Notes:          q.Notes,
		SignatureName:  q.SignatureName,
		SignaturePos:   q.SignaturePosition,
	}
	return renderDocument(&data, company)
}

func renderDocument(data *documentData, company *models.Company) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(data.Theme.r, data.Theme.g, data.Theme.b)
	pdf.CellFormat(0, 12, tr(data.Title), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeCompanyBlock(pdf, tr, company)
	pdf.Ln(6)

	// Document info
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(38, 6, tr(data.NumberLabel), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(62, 6, tr(data.Number), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, 6, "Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(data.Date), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(38, 6, "Client:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(62, 6, tr(data.ClientName), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, 6, tr(data.SecondaryLabel), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	secondary := data.SecondaryDate
	if secondary == "" {
		secondary = "-"
	}
	pdf.CellFormat(0, 6, tr(secondary), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	writeItemsTable(pdf, tr, data)
	pdf.Ln(4)
	writeSummary(pdf, tr, data)

	if data.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(data.Notes), "", "L", false)
	}

	if company.BankName != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Payment Details:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, tr("Bank: "+company.BankName), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr("Account: "+company.BankAccount), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr("Account Name: "+company.BankAccountName), "", 1, "L", false, 0, "")
	}

	if data.SignatureName != "" || data.SignaturePos != "" {
		pdf.Ln(14)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Authorized Signature:", "", 1, "R", false, 0, "")
		pdf.Ln(14)
		if data.SignatureName != "" {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 5, tr(data.SignatureName), "", 1, "R", false, 0, "")
		}
		if data.SignaturePos != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, 5, tr(data.SignaturePos), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCompanyBlock(pdf *gofpdf.Fpdf, tr func(string) string, company *models.Company) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr(company.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if company.Address != "" {
		pdf.MultiCell(0, 5, tr(company.Address), "", "L", false)
	}
	contact := "Phone: " + company.Phone + " | Email: " + company.Email
	pdf.CellFormat(0, 5, tr(contact), "", 1, "L", false, 0, "")
	if company.Npwp != "" {
		pdf.CellFormat(0, 5, tr("NPWP: "+company.Npwp), "", 1, "L", false, 0, "")
	}
}

func writeItemsTable(pdf *gofpdf.Fpdf, tr func(string) string, data *documentData) {
	widths := []float64{38, 52, 24, 30, 30}
	headers := []string{"Item", "Description", "Qty", "Unit Price", "Total"}
	aligns := []string{"L", "L", "R", "R", "R"}

	pdf.SetFillColor(data.Theme.r, data.Theme.g, data.Theme.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	for rowIdx, row := range data.Rows {
		fill := rowIdx%2 == 0
		pdf.SetFillColor(245, 245, 245)
		cells := []string{
			row.Name,
			row.Description,
			row.Qty,
			models.FormatAmount(row.UnitPrice, data.Currency),
			models.FormatAmount(row.Total, data.Currency),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, aligns[i], fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, data *documentData) {
	labelWidth := 124.0
	valueWidth := 50.0

	writeLine := func(label, value string, bold bool) {
		style := ""
		size := 10.0
		if bold {
			style = "B"
			size = 12
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(valueWidth, 7, tr(value), "", 1, "R", false, 0, "")
	}

	writeLine("Subtotal:", models.FormatAmount(data.Subtotal, data.Currency), false)
	if data.DiscountAmount.GreaterThan(decimal.Zero) {
		writeLine("Discount ("+data.DiscountRate.String()+"%):", models.FormatAmount(data.DiscountAmount, data.Currency), false)
	}
	if data.TaxAmount.GreaterThan(decimal.Zero) {
		writeLine("Tax ("+data.TaxRate.String()+"%):", models.FormatAmount(data.TaxAmount, data.Currency), false)
	}
	pdf.SetDrawColor(data.Theme.r, data.Theme.g, data.Theme.b)
	pdf.SetLineWidth(0.6)
	x, y := pdf.GetXY()
	pdf.Line(x+labelWidth-40, y, x+labelWidth+valueWidth, y)
	writeLine("Total:", models.FormatAmount(data.Total, data.Currency), true)
}
