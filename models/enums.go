package models

type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencySGD Currency = "SGD"
	CurrencyMYR Currency = "MYR"
)

// ParseCurrency normalizes a currency label. Currency is carried as metadata
// only (no conversion); anything unrecognized falls back to IDR, the
// document default.
func ParseCurrency(s string) Currency {
	switch Currency(s) {
	case CurrencyIDR, CurrencyUSD, CurrencyEUR, CurrencySGD, CurrencyMYR:
		return Currency(s)
	default:
		return CurrencyIDR
	}
}

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// NormalizeInvoiceStatus mirrors the register view: unknown statuses render
// as draft, so they are stored as draft too.
func NormalizeInvoiceStatus(s string) InvoiceStatus {
	switch InvoiceStatus(s) {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return InvoiceStatus(s)
	default:
		return InvoiceStatusDraft
	}
}

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

func NormalizeQuotationStatus(s string) QuotationStatus {
	switch QuotationStatus(s) {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return QuotationStatus(s)
	default:
		return QuotationStatusDraft
	}
}

type LetterType string

const (
	LetterTypeGeneral     LetterType = "general"
	LetterTypeCooperation LetterType = "cooperation"
	LetterTypeRequest     LetterType = "request"
)

func NormalizeLetterType(s string) LetterType {
	switch LetterType(s) {
	case LetterTypeGeneral, LetterTypeCooperation, LetterTypeRequest:
		return LetterType(s)
	default:
		return LetterTypeGeneral
	}
}
