package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, "0"},
		{"int", 25, "25"},
		{"int64", int64(1500), "1500"},
		{"float64", 12.5, "12.5"},
		{"decimal passthrough", decimal.NewFromInt(77), "77"},
		{"json number", json.Number("19.99"), "19.99"},
		{"plain string", "20000", "20000"},
		{"grouped string", "20,000", "20000"},
		{"currency prefix", "Rp 20,000", "20000"},
		{"symbol and decimals", "$ 1,234.50", "1234.5"},
		{"negative", "-1,234.50", "-1234.5"},
		{"letters only", "abc", "0"},
		{"empty string", "", "0"},
		{"whitespace", "   ", "0"},
		{"double dot garbage", "1.2.3", "0"},
		{"bool", true, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			got := ParseDecimal(tt.input)
			if !got.Equal(want) {
				t.Errorf("ParseDecimal(%v) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseRateClampsNegative(t *testing.T) {
	if got := ParseRate("-10"); !got.IsZero() {
		t.Errorf("ParseRate(-10) = %s, want 0", got)
	}
	if got := ParseRate("11"); !got.Equal(decimal.NewFromInt(11)) {
		t.Errorf("ParseRate(11) = %s, want 11", got)
	}
	if got := ParseRate("garbage"); !got.IsZero() {
		t.Errorf("ParseRate(garbage) = %s, want 0", got)
	}
}

func TestCalculateDiscountAmount(t *testing.T) {
	tests := []struct {
		name     string
		subTotal string
		rate     string
		want     string
	}{
		{"five percent", "200000", "5", "10000"},
		{"zero rate", "200000", "0", "0"},
		{"fractional result", "100", "12.5", "12.5"},
		{"rounded to four places", "1000", "3.33333", "33.3333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscountAmount(decimal.RequireFromString(tt.subTotal), decimal.RequireFromString(tt.rate))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("CalculateDiscountAmount(%s, %s) = %s, want %s", tt.subTotal, tt.rate, got, tt.want)
			}
		})
	}
}

func TestCalculateTaxAmount(t *testing.T) {
	base := decimal.RequireFromString("190000")
	got := CalculateTaxAmount(base, decimal.NewFromInt(10))
	if !got.Equal(decimal.RequireFromString("19000")) {
		t.Errorf("CalculateTaxAmount(190000, 10) = %s, want 19000", got)
	}
	if got := CalculateTaxAmount(base, decimal.Zero); !got.IsZero() {
		t.Errorf("CalculateTaxAmount(190000, 0) = %s, want 0", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"billing@example.com", "a.b+c@sub.domain.co"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "no-at-sign", "missing@tld", "@example.com"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}
