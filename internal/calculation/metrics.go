package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

// DefaultPaybackHorizonMonths caps the monthly payback scan when no
// evaluation horizon is supplied.
const DefaultPaybackHorizonMonths = 60

// NPV discounts each year's net cash flow at the given rate, starting at
// year 1. The year-1 services cost embedded in the first flow is therefore
// discounted; the monthly payback below instead books it undiscounted at
// month 0. The mismatch is inherited behavior and is kept as-is (see
// DESIGN.md).
func NPV(flows []domain.CashFlowYear, discountRate decimal.Decimal) decimal.Decimal {
	npv := decimal.Zero
	base := one.Add(discountRate)
	for _, cf := range flows {
		discount := base.Pow(decimal.NewFromInt(int64(cf.Year)))
		npv = npv.Add(cf.NetCashFlow.Div(discount))
	}
	return npv
}

// TotalCostOfOwnership sums every year's platform and services cost,
// undiscounted.
func TotalCostOfOwnership(flows []domain.CashFlowYear) decimal.Decimal {
	tco := decimal.Zero
	for _, cf := range flows {
		tco = tco.Add(cf.PlatformCost).Add(cf.ServicesCost)
	}
	return tco
}

// ROI is discounted NPV over undiscounted TCO, zero when TCO is zero.
// Mixing discounted and undiscounted terms is not a textbook ROI, but it is
// what the assessment has always reported, so it stays.
func ROI(npv, tco decimal.Decimal) decimal.Decimal {
	if tco.IsZero() {
		return decimal.Zero
	}
	return npv.Div(tco)
}

// PaybackYears scans the undiscounted annual flows for the first year whose
// running total turns non-negative.
func PaybackYears(flows []domain.CashFlowYear) domain.Payback {
	cumulative := decimal.Zero
	for _, cf := range flows {
		cumulative = cumulative.Add(cf.NetCashFlow)
		if cumulative.GreaterThanOrEqual(decimal.Zero) {
			return domain.PaybackAt(cf.Year)
		}
	}
	return domain.PaybackNotReached()
}

// PaybackMonths computes the finer-grained payback independently of the
// annual figure. The cumulative flow starts at -servicesCost, then each
// month adds the realization-scaled monthly benefit minus the monthly
// platform cost, up to maxMonths (DefaultPaybackHorizonMonths when <= 0).
func PaybackMonths(annualBenefits decimal.Decimal, costs domain.Costs, delayMonths, rampMonths, maxMonths int) domain.Payback {
	if maxMonths <= 0 {
		maxMonths = DefaultPaybackHorizonMonths
	}

	cumulative := costs.OneTimeServicesCost.Neg()
	monthlyPlatformCost := costs.AnnualPlatformCost.Div(twelve)
	monthlyBenefitBase := annualBenefits.Div(twelve)

	for month := 1; month <= maxMonths; month++ {
		factor := RealizationFactor(month, delayMonths, rampMonths)
		cumulative = cumulative.Add(monthlyBenefitBase.Mul(factor)).Sub(monthlyPlatformCost)
		if cumulative.GreaterThanOrEqual(decimal.Zero) {
			return domain.PaybackAt(month)
		}
	}
	return domain.PaybackNotReached()
}
