package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/domain"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
	twelve         = decimal.NewFromInt(12)
	one            = decimal.NewFromInt(1)
)

// AllocateCost derives the fully-loaded cost of handling one workload class
// from headcount economics: how much of the team's available time the
// workload consumes, and what that time costs at the team's salary level.
//
// A zero volume or zero headcount yields all-zero outputs. That is policy,
// not error handling: both mean there is no workload to price.
func AllocateCost(w domain.Workload, cal domain.WorkCalendar) domain.CostAllocation {
	workingHours := cal.AnnualWorkingHours()

	if w.Volume == 0 || w.FTEs.IsZero() {
		return domain.CostAllocation{WorkingHoursPerFTE: workingHours}
	}

	volume := decimal.NewFromInt(w.Volume)
	totalTriageHours := volume.Mul(w.AvgTriageMinutes).Div(minutesPerHour)
	availableHours := w.FTEs.Mul(workingHours)

	// Not clamped to [0,1]. A fraction above 1.0 means triage demand
	// exceeds headcount capacity; the advisor surfaces it to the caller.
	fraction := decimal.Zero
	if availableHours.IsPositive() {
		fraction = totalTriageHours.Div(availableHours)
	}

	totalCost := w.TotalFTECost().Mul(fraction)

	return domain.CostAllocation{
		CostPerUnit:        totalCost.Div(volume),
		TotalHandlingCost:  totalCost,
		FTETimeFraction:    fraction,
		WorkingHoursPerFTE: workingHours,
	}
}
