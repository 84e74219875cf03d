package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"bitbucket.org/mmdatafocus/billing_backend/utils"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display. IDR is a zero-decimal currency;
// USD and EUR use their symbols with two decimals; everything else falls back
// to "CUR 1,234.56". No conversion happens here, the currency is a label.
//
// Internal totals keep full decimal precision; this is the only place where
// amounts are rounded.
func FormatAmount(amount decimal.Decimal, currency Currency) string {
	f, _ := amount.Float64()
	switch currency {
	case CurrencyIDR:
		return "Rp " + displayPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
	case CurrencyUSD:
		return "$" + displayPrinter.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	case CurrencyEUR:
		return "€" + displayPrinter.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	default:
		return string(currency) + " " + displayPrinter.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
}

// MultiplyAmount computes quantity * unit price from raw input values.
// Either side may be a string fresh from a form field; malformed input counts
// as zero so the row totals to zero instead of failing.
func MultiplyAmount(quantity, unitPrice interface{}) decimal.Decimal {
	return utils.ParseDecimal(quantity).Mul(utils.ParseDecimal(unitPrice))
}
