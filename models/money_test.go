package models_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/billing_backend/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency models.Currency
		want     string
	}{
		{"idr drops decimals", "1234567", models.CurrencyIDR, "Rp 1,234,567"},
		{"idr rounds fraction", "1234.4", models.CurrencyIDR, "Rp 1,234"},
		{"idr zero", "0", models.CurrencyIDR, "Rp 0"},
		{"usd symbol two decimals", "1234.5", models.CurrencyUSD, "$1,234.50"},
		{"eur symbol", "99.9", models.CurrencyEUR, "€99.90"},
		{"sgd code fallback", "1234.56", models.CurrencySGD, "SGD 1,234.56"},
		{"myr code fallback", "250", models.CurrencyMYR, "MYR 250.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.FormatAmount(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.want {
				t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

func TestMultiplyAmount(t *testing.T) {
	tests := []struct {
		name      string
		quantity  interface{}
		unitPrice interface{}
		want      string
	}{
		{"plain numbers", 3, 1000, "3000"},
		{"string inputs", "2", "150,000", "300000"},
		{"fractional quantity", "1.5", "1000", "1500"},
		{"malformed quantity", "abc", "1000", "0"},
		{"nil price", 4, nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.MultiplyAmount(tt.quantity, tt.unitPrice)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("MultiplyAmount(%v, %v) = %s, want %s", tt.quantity, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestParseCurrencyFallsBackToIDR(t *testing.T) {
	if got := models.ParseCurrency("USD"); got != models.CurrencyUSD {
		t.Errorf("ParseCurrency(USD) = %s", got)
	}
	if got := models.ParseCurrency("BTC"); got != models.CurrencyIDR {
		t.Errorf("ParseCurrency(BTC) = %s, want IDR", got)
	}
	if got := models.ParseCurrency(""); got != models.CurrencyIDR {
		t.Errorf("ParseCurrency(empty) = %s, want IDR", got)
	}
}
