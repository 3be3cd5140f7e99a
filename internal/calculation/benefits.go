package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

// WorkloadSavings applies the reduction and triage-efficiency levers to one
// priced workload.
//
// Order matters: triage savings apply to the cost of handling the units
// that remain after reduction, so the two levers are not additive
// percentages of the original cost.
func WorkloadSavings(w domain.Workload, alloc domain.CostAllocation) domain.WorkloadBenefits {
	volume := decimal.NewFromInt(w.Volume)

	avoidedUnits := volume.Mul(w.ReductionPct.Div(hundred))
	remainingUnits := volume.Sub(avoidedUnits)

	reductionSavings := avoidedUnits.Mul(alloc.CostPerUnit)
	remainingCost := remainingUnits.Mul(alloc.CostPerUnit)
	triageSavings := remainingCost.Mul(w.TriageTimeSavedPct.Div(hundred))

	return domain.WorkloadBenefits{
		ReductionSavings: reductionSavings,
		TriageSavings:    triageSavings,
	}
}

// MajorIncidentSavings values the MTTR improvement on Sev1 incidents:
// hours shaved per incident, times volume, times the cost of an outage hour.
func MajorIncidentSavings(mi domain.MajorIncidents) decimal.Decimal {
	hoursSavedPerIncident := mi.ImprovementPct.Div(hundred).Mul(mi.AvgMTTRHours)
	totalHoursSaved := decimal.NewFromInt(mi.Volume).Mul(hoursSavedPerIncident)
	return totalHoursSaved.Mul(mi.AvgCostPerHour)
}

// BenefitBaseline assembles the full annual benefit breakdown for an
// assessment from the two workload allocations.
func BenefitBaseline(a *domain.Assessment, alertAlloc, incidentAlloc domain.CostAllocation) domain.BenefitBreakdown {
	alerts := WorkloadSavings(a.Alerts, alertAlloc)
	incidents := WorkloadSavings(a.Incidents, incidentAlloc)

	return domain.BenefitBreakdown{
		AlertReductionSavings:    alerts.ReductionSavings,
		AlertTriageSavings:       alerts.TriageSavings,
		IncidentReductionSavings: incidents.ReductionSavings,
		IncidentTriageSavings:    incidents.TriageSavings,
		MajorIncidentSavings:     MajorIncidentSavings(a.MajorIncidents),
		AdditionalBenefits:       a.Additional.Total(),
	}
}

// SummarizeSavings restates operational savings as an equivalent FTE count,
// using the mean of the nonzero alert/incident salaries as the blended rate.
func SummarizeSavings(a *domain.Assessment, benefits domain.BenefitBreakdown) domain.SavingsSummary {
	operational := benefits.OperationalSavings()

	alertSalary := a.Alerts.AvgSalary
	incidentSalary := a.Incidents.AvgSalary

	var effective decimal.Decimal
	switch {
	case alertSalary.IsPositive() && incidentSalary.IsPositive():
		effective = alertSalary.Add(incidentSalary).Div(decimal.NewFromInt(2))
	case alertSalary.IsPositive():
		effective = alertSalary
	case incidentSalary.IsPositive():
		effective = incidentSalary
	}

	equivalent := decimal.Zero
	if effective.IsPositive() {
		equivalent = operational.Div(effective)
	}

	return domain.SavingsSummary{
		TotalOperationalSavings: operational,
		EffectiveAvgFTESalary:   effective,
		EquivalentFTEs:          equivalent,
	}
}
