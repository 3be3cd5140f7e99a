package calculation

import (
	"github.com/shopspring/decimal"
)

// RealizationFactor maps an absolute month number (1-based) to the fraction
// of full annual benefit realized that month:
//
//	month <= delay                -> 0 (still implementing)
//	delay < month <= delay+ramp   -> (month-delay)/ramp (linear adoption ramp)
//	otherwise                     -> 1 (full benefit)
//
// With ramp == 0 the middle condition collapses into the first, so any
// month past the delay gets the full factor without dividing by zero. The
// curve is non-decreasing in month for fixed delay and ramp.
func RealizationFactor(month, delayMonths, rampMonths int) decimal.Decimal {
	switch {
	case month <= delayMonths:
		return decimal.Zero
	case month <= delayMonths+rampMonths:
		monthsSinceGoLive := decimal.NewFromInt(int64(month - delayMonths))
		return monthsSinceGoLive.Div(decimal.NewFromInt(int64(rampMonths)))
	default:
		return one
	}
}
