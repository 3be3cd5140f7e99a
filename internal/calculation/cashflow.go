package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

// ProjectCashFlows builds the year-by-year net cash flow series. Each
// year's benefit is the annual benefit scaled by the realization factor
// averaged across that year's 12 calendar months. The platform cost is
// charged every year; the one-time services cost only in year 1.
func ProjectCashFlows(annualBenefits decimal.Decimal, timeline domain.Timeline, costs domain.Costs) []domain.CashFlowYear {
	flows := make([]domain.CashFlowYear, 0, timeline.EvaluationYears)

	for year := 1; year <= timeline.EvaluationYears; year++ {
		factorSum := decimal.Zero
		firstMonth := (year-1)*12 + 1
		for month := firstMonth; month <= year*12; month++ {
			factorSum = factorSum.Add(RealizationFactor(month, timeline.ImplementationDelayMonths, timeline.RampUpMonths))
		}
		avgFactor := factorSum.Div(twelve)

		benefits := annualBenefits.Mul(avgFactor)
		servicesCost := decimal.Zero
		if year == 1 {
			servicesCost = costs.OneTimeServicesCost
		}

		flows = append(flows, domain.CashFlowYear{
			Year:              year,
			Benefits:          benefits,
			PlatformCost:      costs.AnnualPlatformCost,
			ServicesCost:      servicesCost,
			NetCashFlow:       benefits.Sub(costs.AnnualPlatformCost).Sub(servicesCost),
			RealizationFactor: avgFactor,
		})
	}

	return flows
}

// ProjectMonthlyCashFlows builds the month-granularity series used for
// payback charting. Month 0 carries the one-time services cost as a pure
// upfront outlay before any benefit accrues; months 1..years*12 each book
// one twelfth of the (realization-scaled) annual benefit against one
// twelfth of the platform cost.
func ProjectMonthlyCashFlows(annualBenefits decimal.Decimal, timeline domain.Timeline, costs domain.Costs) []domain.MonthlyCashFlow {
	totalMonths := timeline.EvaluationYears * 12
	flows := make([]domain.MonthlyCashFlow, 0, totalMonths+1)

	cumulative := costs.OneTimeServicesCost.Neg()
	flows = append(flows, domain.MonthlyCashFlow{
		Month:                 0,
		NetCashFlow:           cumulative,
		CumulativeNetCashFlow: cumulative,
	})

	monthlyPlatformCost := costs.AnnualPlatformCost.Div(twelve)
	monthlyBenefitBase := annualBenefits.Div(twelve)

	for month := 1; month <= totalMonths; month++ {
		factor := RealizationFactor(month, timeline.ImplementationDelayMonths, timeline.RampUpMonths)
		net := monthlyBenefitBase.Mul(factor).Sub(monthlyPlatformCost)
		cumulative = cumulative.Add(net)

		flows = append(flows, domain.MonthlyCashFlow{
			Month:                 month,
			NetCashFlow:           net,
			CumulativeNetCashFlow: cumulative,
		})
	}

	return flows
}
