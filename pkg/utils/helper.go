package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseMoney parses an optional decimal string. Empty means zero.
func ParseMoney(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return d.Round(2), nil
}

// GenerateReferenceCode creates a booking reference code.
// Format: BK-YYYYMMDD-HHMMSS-RAND
func GenerateReferenceCode(now time.Time) string {
	return fmt.Sprintf("BK-%s-%04d", now.Format("20060102-150405"), rand.IntN(10000))
}

// GenerateReceiptNumber creates an official receipt number for a payment.
// Format: OR-YYYYMMDD-RAND
func GenerateReceiptNumber(now time.Time) string {
	return fmt.Sprintf("OR-%s-%06d", now.Format("20060102"), rand.IntN(1000000))
}
