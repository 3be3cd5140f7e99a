package domain

import (
	"github.com/shopspring/decimal"
)

// CostAllocation is the fully-loaded cost derived for one workload class.
type CostAllocation struct {
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	TotalHandlingCost decimal.Decimal `json:"total_handling_cost"`

	// FTETimeFraction is the share of available FTE hours consumed by the
	// workload. Deliberately unclamped: values above 1.0 signal that triage
	// demand exceeds headcount capacity and are surfaced, not corrected.
	FTETimeFraction decimal.Decimal `json:"fte_time_fraction"`

	// WorkingHoursPerFTE echoes the calendar-derived annual hours used.
	WorkingHoursPerFTE decimal.Decimal `json:"working_hours_per_fte"`
}

// WorkloadBenefits are the annual savings for one workload class.
// TriageSavings is computed on the post-reduction remaining cost base.
type WorkloadBenefits struct {
	ReductionSavings decimal.Decimal `json:"reduction_savings"`
	TriageSavings    decimal.Decimal `json:"triage_savings"`
}

// Total is reduction plus triage savings.
func (b WorkloadBenefits) Total() decimal.Decimal {
	return b.ReductionSavings.Add(b.TriageSavings)
}

// CashFlowYear is one row of the annual projection.
type CashFlowYear struct {
	Year              int             `json:"year"`
	Benefits          decimal.Decimal `json:"benefits"`
	PlatformCost      decimal.Decimal `json:"platform_cost"`
	ServicesCost      decimal.Decimal `json:"services_cost"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow"`
	RealizationFactor decimal.Decimal `json:"realization_factor"`
}

// MonthlyCashFlow is one row of the month-granularity projection. Month 0
// carries the one-time services cost as a pure upfront outlay.
type MonthlyCashFlow struct {
	Month                 int             `json:"month"`
	NetCashFlow           decimal.Decimal `json:"net_cash_flow"`
	CumulativeNetCashFlow decimal.Decimal `json:"cumulative_net_cash_flow"`
}

// Payback reports whether and when cumulative net cash flow first became
// non-negative. Period is a 1-based year or month index depending on which
// computation produced it, and is meaningful only when Reached is true.
type Payback struct {
	Reached bool `json:"reached"`
	Period  int  `json:"period,omitempty"`
}

// PaybackAt returns a reached payback at the given period.
func PaybackAt(period int) Payback {
	return Payback{Reached: true, Period: period}
}

// PaybackNotReached marks a horizon where break-even never occurred.
func PaybackNotReached() Payback {
	return Payback{}
}

// ScenarioResult holds the outcome metrics for one named scenario.
//
// PaybackYears and PaybackMonths are computed independently and may
// disagree: the annual figure discounts nothing and carries the services
// cost inside year 1, while the monthly figure books the services cost as
// an undiscounted month-0 outlay. Both are retained on purpose.
type ScenarioResult struct {
	Name                      string             `json:"name"`
	Description               string             `json:"description,omitempty"`
	BenefitsMultiplier        decimal.Decimal    `json:"benefits_multiplier"`
	DelayMultiplier           decimal.Decimal    `json:"delay_multiplier"`
	ImplementationDelayMonths int                `json:"implementation_delay_months"`
	AnnualBenefits            decimal.Decimal    `json:"annual_benefits"`
	NPV                       decimal.Decimal    `json:"npv"`
	ROI                       decimal.Decimal    `json:"roi"`
	TCO                       decimal.Decimal    `json:"tco"`
	PaybackYears              Payback            `json:"payback_years"`
	PaybackMonths             Payback            `json:"payback_months"`
	CashFlows                 []CashFlowYear     `json:"cash_flows"`
	MonthlyCashFlows          []MonthlyCashFlow  `json:"monthly_cash_flows,omitempty"`
}

// BenefitBreakdown itemizes the annual baseline benefit lines.
type BenefitBreakdown struct {
	AlertReductionSavings    decimal.Decimal `json:"alert_reduction_savings"`
	AlertTriageSavings       decimal.Decimal `json:"alert_triage_savings"`
	IncidentReductionSavings decimal.Decimal `json:"incident_reduction_savings"`
	IncidentTriageSavings    decimal.Decimal `json:"incident_triage_savings"`
	MajorIncidentSavings     decimal.Decimal `json:"major_incident_savings"`
	AdditionalBenefits       decimal.Decimal `json:"additional_benefits"`
}

// OperationalSavings is the alert/incident/MTTR subtotal, excluding the
// flat additional-benefit lines.
func (b BenefitBreakdown) OperationalSavings() decimal.Decimal {
	return b.AlertReductionSavings.
		Add(b.AlertTriageSavings).
		Add(b.IncidentReductionSavings).
		Add(b.IncidentTriageSavings).
		Add(b.MajorIncidentSavings)
}

// Total is every benefit line summed, the annual baseline fed to scenarios.
func (b BenefitBreakdown) Total() decimal.Decimal {
	return b.OperationalSavings().Add(b.AdditionalBenefits)
}

// SavingsSummary restates operational savings in headcount terms for
// executive reporting.
type SavingsSummary struct {
	TotalOperationalSavings decimal.Decimal `json:"total_operational_savings"`
	EffectiveAvgFTESalary   decimal.Decimal `json:"effective_avg_fte_salary"`
	EquivalentFTEs          decimal.Decimal `json:"equivalent_ftes"`
}

// Warning is an advisory produced by the health-check layer. Warnings never
// alter computed results.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AssessmentResult is the complete output of one engine run.
type AssessmentResult struct {
	SolutionName        string           `json:"solution_name"`
	CurrencySymbol      string           `json:"currency"`
	AlertAllocation     CostAllocation   `json:"alert_allocation"`
	IncidentAllocation  CostAllocation   `json:"incident_allocation"`
	Benefits            BenefitBreakdown `json:"benefits"`
	TotalAnnualBenefits decimal.Decimal  `json:"total_annual_benefits"`
	Scenarios           []ScenarioResult `json:"scenarios"`
	Summary             SavingsSummary   `json:"summary"`
	Warnings            []Warning        `json:"warnings,omitempty"`
}

// Scenario looks a result up by name. Returns nil when absent.
func (r *AssessmentResult) Scenario(name string) *ScenarioResult {
	for i := range r.Scenarios {
		if r.Scenarios[i].Name == name {
			return &r.Scenarios[i]
		}
	}
	return nil
}
