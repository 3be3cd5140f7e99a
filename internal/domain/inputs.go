package domain

import (
	"github.com/shopspring/decimal"
)

// WorkCalendar describes how much time one FTE actually works in a year.
type WorkCalendar struct {
	HoursPerDay     decimal.Decimal `json:"hours_per_day" yaml:"hours_per_day"`
	DaysPerWeek     decimal.Decimal `json:"days_per_week" yaml:"days_per_week"`
	WeeksPerYear    decimal.Decimal `json:"weeks_per_year" yaml:"weeks_per_year"`
	HolidaySickDays decimal.Decimal `json:"holiday_sick_days" yaml:"holiday_sick_days"`
}

// AnnualWorkingHours derives the working hours available from one FTE per
// year: (weeks*days - holidaySick) * hoursPerDay. The result may be zero or
// negative for nonsensical calendars; callers decide what to do with that.
func (c WorkCalendar) AnnualWorkingHours() decimal.Decimal {
	workingDays := c.WeeksPerYear.Mul(c.DaysPerWeek).Sub(c.HolidaySickDays)
	return workingDays.Mul(c.HoursPerDay)
}

// StandardCalendar returns the default 8h/5d/52w calendar with 25 days off.
func StandardCalendar() WorkCalendar {
	return WorkCalendar{
		HoursPerDay:     decimal.NewFromInt(8),
		DaysPerWeek:     decimal.NewFromInt(5),
		WeeksPerYear:    decimal.NewFromInt(52),
		HolidaySickDays: decimal.NewFromInt(25),
	}
}

// Workload captures one class of operational work (alerts or incidents)
// together with the automation levers applied to it. Percentages are 0-100.
type Workload struct {
	Volume             int64           `json:"volume" yaml:"volume"`
	FTEs               decimal.Decimal `json:"ftes" yaml:"ftes"`
	AvgTriageMinutes   decimal.Decimal `json:"avg_triage_minutes" yaml:"avg_triage_minutes"`
	AvgSalary          decimal.Decimal `json:"avg_salary" yaml:"avg_salary"`
	ReductionPct       decimal.Decimal `json:"reduction_pct" yaml:"reduction_pct"`
	TriageTimeSavedPct decimal.Decimal `json:"triage_time_saved_pct" yaml:"triage_time_saved_pct"`
}

// TotalFTECost is headcount times salary, before any time allocation.
func (w Workload) TotalFTECost() decimal.Decimal {
	return w.FTEs.Mul(w.AvgSalary)
}

// MajorIncidents captures Sev1 incident economics. Improvement is 0-100.
type MajorIncidents struct {
	Volume         int64           `json:"volume" yaml:"volume"`
	AvgCostPerHour decimal.Decimal `json:"avg_cost_per_hour" yaml:"avg_cost_per_hour"`
	AvgMTTRHours   decimal.Decimal `json:"avg_mttr_hours" yaml:"avg_mttr_hours"`
	ImprovementPct decimal.Decimal `json:"mttr_improvement_pct" yaml:"mttr_improvement_pct"`
}

// AdditionalBenefits are flat annual currency amounts summed verbatim into
// total benefits. No allocation logic applies to these.
type AdditionalBenefits struct {
	ToolSavings         decimal.Decimal `json:"tool_savings" yaml:"tool_savings"`
	PeopleEfficiency    decimal.Decimal `json:"people_efficiency" yaml:"people_efficiency"`
	FTEAvoidance        decimal.Decimal `json:"fte_avoidance" yaml:"fte_avoidance"`
	SLAPenaltyAvoidance decimal.Decimal `json:"sla_penalty_avoidance" yaml:"sla_penalty_avoidance"`
	RevenueGrowth       decimal.Decimal `json:"revenue_growth" yaml:"revenue_growth"`
	CapexSavings        decimal.Decimal `json:"capex_savings" yaml:"capex_savings"`
	OpexSavings         decimal.Decimal `json:"opex_savings" yaml:"opex_savings"`
}

// Total sums every additional benefit line.
func (a AdditionalBenefits) Total() decimal.Decimal {
	return a.ToolSavings.
		Add(a.PeopleEfficiency).
		Add(a.FTEAvoidance).
		Add(a.SLAPenaltyAvoidance).
		Add(a.RevenueGrowth).
		Add(a.CapexSavings).
		Add(a.OpexSavings)
}

// Costs holds the solution cost inputs.
type Costs struct {
	AnnualPlatformCost  decimal.Decimal `json:"annual_platform_cost" yaml:"annual_platform_cost"`
	OneTimeServicesCost decimal.Decimal `json:"one_time_services_cost" yaml:"one_time_services_cost"`
}

// Timeline holds the deployment timing and financial-evaluation parameters.
// DiscountRate is a fraction (0.10 for 10%), not a percentage.
type Timeline struct {
	ImplementationDelayMonths int             `json:"implementation_delay_months" yaml:"implementation_delay_months"`
	RampUpMonths              int             `json:"ramp_up_months" yaml:"ramp_up_months"`
	EvaluationYears           int             `json:"evaluation_years" yaml:"evaluation_years"`
	DiscountRate              decimal.Decimal `json:"discount_rate" yaml:"discount_rate"`
}

// ScenarioDefinition names one multiplier set applied to the baseline.
// BenefitsMultiplier scales annual benefits; DelayMultiplier scales the
// implementation delay (ramp-up is never scaled).
type ScenarioDefinition struct {
	Name               string          `json:"name" yaml:"name"`
	Description        string          `json:"description,omitempty" yaml:"description,omitempty"`
	BenefitsMultiplier decimal.Decimal `json:"benefits_multiplier" yaml:"benefits_multiplier"`
	DelayMultiplier    decimal.Decimal `json:"delay_multiplier" yaml:"delay_multiplier"`
}

// Assessment is the complete input to one engine run. Nothing here is
// mutated by the engine; every run constructs fresh result records.
type Assessment struct {
	SolutionName     string             `json:"solution_name" yaml:"solution_name"`
	IndustryTemplate string             `json:"industry_template,omitempty" yaml:"industry_template,omitempty"`
	CurrencySymbol   string             `json:"currency" yaml:"currency"`
	Calendar         WorkCalendar       `json:"calendar" yaml:"calendar"`
	Alerts           Workload           `json:"alerts" yaml:"alerts"`
	Incidents        Workload           `json:"incidents" yaml:"incidents"`
	MajorIncidents   MajorIncidents     `json:"major_incidents" yaml:"major_incidents"`
	Additional       AdditionalBenefits `json:"additional_benefits" yaml:"additional_benefits"`
	Costs            Costs              `json:"costs" yaml:"costs"`
	Timeline         Timeline           `json:"timeline" yaml:"timeline"`

	// Scenarios to evaluate. Empty means the default
	// Conservative/Expected/Optimistic set.
	Scenarios []ScenarioDefinition `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
}
