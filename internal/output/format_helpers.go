package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	pkgdecimal "github.com/bva/business-value-calculator/pkg/decimal"
	"github.com/bva/business-value-calculator/internal/domain"
)

// FormatCurrency formats a decimal as currency with 2 decimals using the
// assessment's currency symbol. Kept here so it can be reused by multiple
// formatters and unit tested in isolation.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).FormatWith(symbol)
}

// FormatPercentage formats a 0-1 fraction as a percentage with 1 decimal.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatPaybackYears renders an annual payback as "N years" or "N/A".
func FormatPaybackYears(p domain.Payback) string {
	if !p.Reached {
		return "N/A"
	}
	return strconv.Itoa(p.Period) + " years"
}

// FormatPaybackMonths renders a monthly payback as "N months" or "N/A".
func FormatPaybackMonths(p domain.Payback) string {
	if !p.Reached {
		return "N/A"
	}
	return strconv.Itoa(p.Period) + " months"
}
