package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"
)

var CountryCode = "ID"

var decimalOneHundred = decimal.NewFromInt(100)

// ParseDecimal converts free-form user input to a decimal amount.
// Malformed, missing or non-numeric input yields zero, never an error:
// a half-filled row must produce a zero total instead of blocking typing.
//
// Accepts common user-formatted strings like:
// - "20000"
// - "20,000"
// - "Rp 20,000"
// - "$ -1,234.50"
func ParseDecimal(i interface{}) decimal.Decimal {
	switch v := i.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		num, err := v.Float64()
		if err != nil {
			return decimal.Zero
		}
		return decimal.NewFromFloat(num)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		neg := false
		if strings.HasPrefix(s, "-") {
			neg = true
			s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
		}
		// Strip everything except digits and '.'.
		var b strings.Builder
		b.Grow(len(s) + 1)
		for _, r := range s {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		clean := b.String()
		if clean == "" {
			return decimal.Zero
		}
		if neg {
			clean = "-" + clean
		}
		val, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.Zero
		}
		return val
	default:
		return decimal.Zero
	}
}

// ParseRate is ParseDecimal with negative input clamped to zero.
// Tax and discount rates are percentages and may not go below zero.
func ParseRate(i interface{}) decimal.Decimal {
	rate := ParseDecimal(i)
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

func CalculateDiscountAmount(subTotal decimal.Decimal, discountRate decimal.Decimal) decimal.Decimal {
	if discountRate.GreaterThan(decimal.Zero) {
		return subTotal.Mul(discountRate).DivRound(decimalOneHundred, 4)
	}
	return decimal.Zero
}

// CalculateTaxAmount applies a percentage tax to the discounted base:
// (totalAmount / 100) * taxRate.
func CalculateTaxAmount(totalAmount decimal.Decimal, taxRate decimal.Decimal) decimal.Decimal {
	if taxRate.GreaterThan(decimal.Zero) {
		return totalAmount.Mul(taxRate).DivRound(decimalOneHundred, 4)
	}
	return decimal.Zero
}

func IsValidEmail(email string) bool {
	// Basic email validation regex pattern
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex := regexp.MustCompile(pattern)
	return regex.MatchString(email)
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err // Phone number is invalid
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil // Phone number is valid for the specified country code
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}
