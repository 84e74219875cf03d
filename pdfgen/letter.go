package pdfgen

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

var letterTypeLabels = map[models.LetterType]string{
	models.LetterTypeGeneral:     "Surat Umum",
	models.LetterTypeCooperation: "Surat Penawaran Kerja Sama",
	models.LetterTypeRequest:     "Surat Permohonan",
}

// Letter renders a business letter PDF with its signatory blocks.
func Letter(letter *models.Letter, company *models.Company) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(22, 20, 22)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Letterhead
	pdf.SetTextColor(letterTheme.r, letterTheme.g, letterTheme.b)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(company.Name), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	if company.Address != "" {
		pdf.CellFormat(0, 5, tr(company.Address), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 5, tr("Phone: "+company.Phone+" | Email: "+company.Email), "", 1, "C", false, 0, "")
	if company.Motto != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, tr(company.Motto), "", 1, "C", false, 0, "")
	}
	pdf.SetDrawColor(letterTheme.r, letterTheme.g, letterTheme.b)
	pdf.SetLineWidth(0.6)
	x, y := pdf.GetXY()
	pdf.Line(x, y+2, 210-22, y+2)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Number: "+letter.LetterNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Date: "+letter.Date), "", 1, "L", false, 0, "")
	if label, ok := letterTypeLabels[letter.LetterType]; ok {
		pdf.CellFormat(0, 5, tr("Re: "+label), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.CellFormat(0, 5, "To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr(letter.RecipientName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if letter.RecipientPosition != "" {
		pdf.CellFormat(0, 5, tr(letter.RecipientPosition), "", 1, "L", false, 0, "")
	}
	if letter.RecipientAddress != "" {
		pdf.MultiCell(0, 5, tr(letter.RecipientAddress), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("Subject: "+letter.Subject), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(letter.Content), "", "L", false)
	pdf.Ln(12)

	writeSignatories(pdf, tr, letter.Signatories)

	if letter.CcList != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr("Cc: "+letter.CcList), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSignatories(pdf *gofpdf.Fpdf, tr func(string) string, signatories []models.Signatory) {
	if len(signatories) == 0 {
		return
	}
	// Up to three signatories side by side; more wrap onto the next band.
	perRow := len(signatories)
	if perRow > 3 {
		perRow = 3
	}
	width := (210.0 - 44.0) / float64(perRow)

	for start := 0; start < len(signatories); start += perRow {
		end := start + perRow
		if end > len(signatories) {
			end = len(signatories)
		}
		band := signatories[start:end]

		pdf.SetFont("Helvetica", "", 10)
		for range band {
			pdf.CellFormat(width, 5, "", "", 0, "C", false, 0, "")
		}
		pdf.Ln(20)
		pdf.SetFont("Helvetica", "BU", 10)
		for _, s := range band {
			pdf.CellFormat(width, 5, tr(s.Name), "", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for _, s := range band {
			pdf.CellFormat(width, 5, tr(strings.TrimSpace(s.Position)), "", 0, "C", false, 0, "")
		}
		pdf.Ln(10)
	}
}
