package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney keeps consistent 2-decimal formatting for currency fields.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatCurrency renders amount as "<label> 0.00"; a negative amount keeps its
// sign after the label ("Bs -6.50").
func FormatCurrency(label string, amount decimal.Decimal) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return FormatMoney(amount)
	}
	return label + " " + FormatMoney(amount)
}
