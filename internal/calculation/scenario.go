package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

// DefaultScenarios returns the standard Conservative/Expected/Optimistic
// multiplier sets. The engine accepts arbitrary definitions; these are only
// the defaults applied when an assessment names none.
func DefaultScenarios() []domain.ScenarioDefinition {
	return []domain.ScenarioDefinition{
		{
			Name:               "Conservative",
			Description:        "Benefits 30% lower, implementation 30% longer",
			BenefitsMultiplier: decimal.NewFromFloat(0.7),
			DelayMultiplier:    decimal.NewFromFloat(1.3),
		},
		{
			Name:               "Expected",
			Description:        "Baseline assumptions as entered",
			BenefitsMultiplier: decimal.NewFromInt(1),
			DelayMultiplier:    decimal.NewFromInt(1),
		},
		{
			Name:               "Optimistic",
			Description:        "Benefits 20% higher, implementation 20% faster",
			BenefitsMultiplier: decimal.NewFromFloat(1.2),
			DelayMultiplier:    decimal.NewFromFloat(0.8),
		},
	}
}

// scenarioDelay scales the baseline implementation delay and truncates the
// product toward zero, floored at zero months. Truncation, not rounding:
// 6 * 1.3 = 7.8 becomes 7.
func scenarioDelay(baseDelayMonths int, multiplier decimal.Decimal) int {
	scaled := decimal.NewFromInt(int64(baseDelayMonths)).Mul(multiplier)
	delay := int(scaled.IntPart())
	if delay < 0 {
		delay = 0
	}
	return delay
}

// RunScenario evaluates one multiplier set against the baseline: benefits
// are scaled, the implementation delay is scaled and truncated, and the
// ramp-up duration is deliberately left untouched. Every run works on its
// own copies; nothing is shared between scenarios.
func RunScenario(def domain.ScenarioDefinition, baseAnnualBenefits decimal.Decimal, baseTimeline domain.Timeline, costs domain.Costs) domain.ScenarioResult {
	scenarioBenefits := baseAnnualBenefits.Mul(def.BenefitsMultiplier)

	timeline := baseTimeline
	timeline.ImplementationDelayMonths = scenarioDelay(baseTimeline.ImplementationDelayMonths, def.DelayMultiplier)

	flows := ProjectCashFlows(scenarioBenefits, timeline, costs)
	monthly := ProjectMonthlyCashFlows(scenarioBenefits, timeline, costs)

	npv := NPV(flows, timeline.DiscountRate)
	tco := TotalCostOfOwnership(flows)

	return domain.ScenarioResult{
		Name:                      def.Name,
		Description:               def.Description,
		BenefitsMultiplier:        def.BenefitsMultiplier,
		DelayMultiplier:           def.DelayMultiplier,
		ImplementationDelayMonths: timeline.ImplementationDelayMonths,
		AnnualBenefits:            scenarioBenefits,
		NPV:                       npv,
		ROI:                       ROI(npv, tco),
		TCO:                       tco,
		PaybackYears:              PaybackYears(flows),
		PaybackMonths: PaybackMonths(scenarioBenefits, costs,
			timeline.ImplementationDelayMonths, timeline.RampUpMonths, timeline.EvaluationYears*12),
		CashFlows:        flows,
		MonthlyCashFlows: monthly,
	}
}
