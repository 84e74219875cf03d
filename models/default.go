package models

import "github.com/shopspring/decimal"

func init() {
	// API payloads carry amounts as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
