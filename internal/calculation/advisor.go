package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

var (
	ninetyPct       = decimal.NewFromInt(90)
	benefitCapRatio = decimal.NewFromInt(2)
)

// Advise inspects raw inputs and computed outputs for figures a reviewer
// would question. Warnings are advisory only; they never block or alter
// the computation.
func Advise(a *domain.Assessment, r *domain.AssessmentResult) []domain.Warning {
	var warnings []domain.Warning

	add := func(code, format string, args ...any) {
		warnings = append(warnings, domain.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if r.AlertAllocation.FTETimeFraction.GreaterThan(one) {
		add("alert_fte_overcapacity",
			"alert triage consumes %s%% of available FTE hours; workload exceeds headcount capacity",
			r.AlertAllocation.FTETimeFraction.Mul(hundred).StringFixed(1))
	}
	if r.IncidentAllocation.FTETimeFraction.GreaterThan(one) {
		add("incident_fte_overcapacity",
			"incident triage consumes %s%% of available FTE hours; workload exceeds headcount capacity",
			r.IncidentAllocation.FTETimeFraction.Mul(hundred).StringFixed(1))
	}

	for _, p := range []struct {
		key   string
		value decimal.Decimal
	}{
		{"alert_reduction_pct", a.Alerts.ReductionPct},
		{"alert_triage_time_saved_pct", a.Alerts.TriageTimeSavedPct},
		{"incident_reduction_pct", a.Incidents.ReductionPct},
		{"incident_triage_time_saved_pct", a.Incidents.TriageTimeSavedPct},
		{"mttr_improvement_pct", a.MajorIncidents.ImprovementPct},
	} {
		if p.value.GreaterThan(ninetyPct) {
			add("aggressive_percentage", "%s of %s%% is above 90%% and likely overstated", p.key, p.value.StringFixed(0))
		}
	}

	if a.Alerts.Volume > 0 && a.Alerts.AvgTriageMinutes.IsZero() {
		add("zero_triage_time", "alert volume is %d but average triage time is zero; alert handling cost will be zero", a.Alerts.Volume)
	}
	if a.Incidents.Volume > 0 && a.Incidents.AvgTriageMinutes.IsZero() {
		add("zero_triage_time", "incident volume is %d but average triage time is zero; incident handling cost will be zero", a.Incidents.Volume)
	}

	totalFTECost := a.Alerts.TotalFTECost().Add(a.Incidents.TotalFTECost())
	if totalFTECost.IsPositive() && r.TotalAnnualBenefits.GreaterThan(totalFTECost.Mul(benefitCapRatio)) {
		add("benefits_exceed_fte_cost",
			"total annual benefits of %s exceed twice the total FTE cost of %s; review the inputs",
			r.TotalAnnualBenefits.StringFixed(0), totalFTECost.StringFixed(0))
	}

	return warnings
}
