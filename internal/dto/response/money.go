package response

import "github.com/shopspring/decimal"

// Money renders an amount with two decimal places. Amounts travel as strings so
// clients never round-trip them through floats.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
