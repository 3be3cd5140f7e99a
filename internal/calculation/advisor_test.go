package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bva/business-value-calculator/internal/domain"
)

func warningCodes(warnings []domain.Warning) []string {
	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestAdviseOvercapacity(t *testing.T) {
	a := &domain.Assessment{
		Calendar: domain.StandardCalendar(),
		Alerts: domain.Workload{
			Volume:           1_200_000,
			FTEs:             decimal.NewFromInt(10),
			AvgTriageMinutes: decimal.NewFromInt(25),
			AvgSalary:        decimal.NewFromInt(50000),
		},
	}
	result := NewEngine().Run(a)

	assert.Contains(t, warningCodes(result.Warnings), "alert_fte_overcapacity")
	assert.NotContains(t, warningCodes(result.Warnings), "incident_fte_overcapacity")

	// The fraction itself stays unclamped in the result.
	assert.True(t, result.AlertAllocation.FTETimeFraction.GreaterThan(decimal.NewFromInt(1)))
}

func TestAdviseAggressivePercentages(t *testing.T) {
	a := fixtureAssessment()
	a.Alerts.ReductionPct = decimal.NewFromInt(95)
	a.MajorIncidents.ImprovementPct = decimal.NewFromInt(91)

	result := NewEngine().Run(a)
	codes := warningCodes(result.Warnings)

	count := 0
	for _, c := range codes {
		if c == "aggressive_percentage" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestAdviseZeroTriageTime(t *testing.T) {
	a := fixtureAssessment()
	a.Incidents.AvgTriageMinutes = decimal.Zero

	result := NewEngine().Run(a)
	assert.Contains(t, warningCodes(result.Warnings), "zero_triage_time")
}

func TestAdviseBenefitsExceedFTECost(t *testing.T) {
	a := fixtureAssessment()
	// Inflate additional benefits far past twice the combined FTE payroll.
	a.Additional.RevenueGrowth = decimal.NewFromInt(50_000_000)

	result := NewEngine().Run(a)
	assert.Contains(t, warningCodes(result.Warnings), "benefits_exceed_fte_cost")
}

func TestAdviseCleanInputsProduceNoWarnings(t *testing.T) {
	a := fixtureAssessment()
	result := NewEngine().Run(a)

	for _, w := range result.Warnings {
		assert.NotEqual(t, "aggressive_percentage", w.Code)
		assert.NotEqual(t, "zero_triage_time", w.Code)
	}
}

// Warnings are advisory only: stripping them changes nothing else.
func TestAdviseDoesNotAlterResults(t *testing.T) {
	a := fixtureAssessment()
	a.Alerts.ReductionPct = decimal.NewFromInt(95)

	withWarnings := NewEngine().Run(a)
	again := NewEngine().Run(a)

	assert.True(t, withWarnings.TotalAnnualBenefits.Equal(again.TotalAnnualBenefits))
	assert.NotEmpty(t, withWarnings.Warnings)
}
