package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bva/business-value-calculator/internal/calculation"
	"github.com/bva/business-value-calculator/internal/domain"
)

// Parameters is the flat name-to-value mapping the engine boundary accepts.
// Values are int64, float64 or string; imports coerce numeric-looking
// strings and keep the rest as strings.
type Parameters map[string]any

// parameterKeys fixes the canonical key order for exports.
var parameterKeys = []string{
	"solution_name", "industry_template", "currency",
	"implementation_delay", "benefits_ramp_up",
	"hours_per_day", "days_per_week", "weeks_per_year", "holiday_sick_days",
	"alert_volume", "alert_ftes", "avg_alert_triage_time", "avg_alert_fte_salary",
	"alert_reduction_pct", "alert_triage_time_saved_pct",
	"incident_volume", "incident_ftes", "avg_incident_triage_time", "avg_incident_fte_salary",
	"incident_reduction_pct", "incident_triage_time_savings_pct",
	"major_incident_volume", "avg_major_incident_cost", "avg_mttr_hours", "mttr_improvement_pct",
	"tool_savings", "people_efficiency", "fte_avoidance", "sla_penalty",
	"revenue_growth", "capex_savings", "opex_savings",
	"platform_cost", "services_cost",
	"evaluation_years", "discount_rate",
}

// parameterDescriptions is the human-readable description column written to
// CSV exports.
var parameterDescriptions = map[string]string{
	"solution_name":                    "Solution Name",
	"industry_template":                "Industry Template",
	"currency":                         "Currency Symbol",
	"implementation_delay":             "Implementation Delay (months)",
	"benefits_ramp_up":                 "Benefits Ramp-up Period (months)",
	"hours_per_day":                    "Working Hours per Day",
	"days_per_week":                    "Working Days per Week",
	"weeks_per_year":                   "Working Weeks per Year",
	"holiday_sick_days":                "Holiday + Sick Days per Year",
	"alert_volume":                     "Total Infrastructure Related Alerts per Year",
	"alert_ftes":                       "Total FTEs Managing Infrastructure Alerts",
	"avg_alert_triage_time":            "Average Alert Triage Time (minutes)",
	"avg_alert_fte_salary":             "Average Annual Salary per Alert Management FTE",
	"alert_reduction_pct":              "% Alert Reduction",
	"alert_triage_time_saved_pct":      "% Alert Triage Time Reduction",
	"incident_volume":                  "Total Infrastructure Related Incident Volumes per Year",
	"incident_ftes":                    "Total FTEs Managing Infrastructure Incidents",
	"avg_incident_triage_time":         "Average Incident Triage Time (minutes)",
	"avg_incident_fte_salary":          "Average Annual Salary per Incident Management FTE",
	"incident_reduction_pct":           "% Incident Reduction",
	"incident_triage_time_savings_pct": "% Incident Triage Time Reduction",
	"major_incident_volume":            "Total Infrastructure Related Major Incidents per Year (Sev1)",
	"avg_major_incident_cost":          "Average Major Incident Cost per Hour",
	"avg_mttr_hours":                   "Average MTTR (hours)",
	"mttr_improvement_pct":             "MTTR Improvement Percentage",
	"tool_savings":                     "Tool Consolidation Savings",
	"people_efficiency":                "People Efficiency Gains",
	"fte_avoidance":                    "FTE Avoidance (annualized value)",
	"sla_penalty":                      "SLA Penalty Avoidance",
	"revenue_growth":                   "Revenue Growth",
	"capex_savings":                    "Capital Expenditure Savings",
	"opex_savings":                     "Operational Expenditure Savings",
	"platform_cost":                    "Annual Subscription Cost",
	"services_cost":                    "Implementation & Services (One-Time)",
	"evaluation_years":                 "Evaluation Period (Years)",
	"discount_rate":                    "NPV Discount Rate (%)",
}

// DefaultParameters returns the default value for every known key.
// discount_rate is the exported percent form (10 means 10%).
func DefaultParameters() Parameters {
	return Parameters{
		"solution_name":                    "AIOPs",
		"industry_template":                "Custom",
		"currency":                         "$",
		"implementation_delay":             int64(6),
		"benefits_ramp_up":                 int64(3),
		"hours_per_day":                    8.0,
		"days_per_week":                    int64(5),
		"weeks_per_year":                   int64(52),
		"holiday_sick_days":                int64(25),
		"alert_volume":                     int64(0),
		"alert_ftes":                       int64(0),
		"avg_alert_triage_time":            int64(0),
		"avg_alert_fte_salary":             int64(50000),
		"alert_reduction_pct":              int64(0),
		"alert_triage_time_saved_pct":      int64(0),
		"incident_volume":                  int64(0),
		"incident_ftes":                    int64(0),
		"avg_incident_triage_time":         int64(0),
		"avg_incident_fte_salary":          int64(50000),
		"incident_reduction_pct":           int64(0),
		"incident_triage_time_savings_pct": int64(0),
		"major_incident_volume":            int64(0),
		"avg_major_incident_cost":          int64(0),
		"avg_mttr_hours":                   0.0,
		"mttr_improvement_pct":             int64(0),
		"tool_savings":                     int64(0),
		"people_efficiency":                int64(0),
		"fte_avoidance":                    int64(0),
		"sla_penalty":                      int64(0),
		"revenue_growth":                   int64(0),
		"capex_savings":                    int64(0),
		"opex_savings":                     int64(0),
		"platform_cost":                    int64(0),
		"services_cost":                    int64(0),
		"evaluation_years":                 int64(3),
		"discount_rate":                    int64(10),
	}
}

// Describe returns the description for a key, falling back to a
// title-cased rendering of the key itself.
func Describe(key string) string {
	if d, ok := parameterDescriptions[key]; ok {
		return d
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// coerceValue turns an imported string into int64, float64 or string,
// in that order of preference.
func coerceValue(raw string) any {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return raw
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return raw
}

// formatValue renders a stored value for export without losing precision.
func formatValue(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// String reads a string-valued parameter, falling back to the default.
func (p Parameters) String(key string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return formatValue(v)
	}
	if d, ok := DefaultParameters()[key]; ok {
		return formatValue(d)
	}
	return ""
}

// Int reads an integer parameter, truncating floats and falling back to
// the default for missing or non-numeric values.
func (p Parameters) Int(key string) int {
	v, ok := p[key]
	if !ok {
		v = DefaultParameters()[key]
	}
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case float64:
		return int(x)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return int(i)
		}
	}
	return 0
}

// Decimal reads a numeric parameter as a decimal, falling back to the
// default for missing or non-numeric values.
func (p Parameters) Decimal(key string) decimal.Decimal {
	v, ok := p[key]
	if !ok {
		v = DefaultParameters()[key]
	}
	switch x := v.(type) {
	case int64:
		return decimal.NewFromInt(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case float64:
		return decimal.NewFromFloat(x)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(x)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// Clone copies the parameter set.
func (p Parameters) Clone() Parameters {
	out := make(Parameters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// templateKeyValues maps template fields onto flat parameter keys.
func templateKeyValues(t calculation.IndustryTemplate) map[string]any {
	return map[string]any{
		"alert_volume":             t.AlertVolume,
		"avg_alert_triage_time":    t.AvgAlertTriageMinutes,
		"alert_reduction_pct":      t.AlertReductionPct,
		"incident_volume":          t.IncidentVolume,
		"avg_incident_triage_time": t.AvgIncidentTriageMinutes,
		"incident_reduction_pct":   t.IncidentReductionPct,
		"major_incident_volume":    t.MajorIncidentVolume,
		"mttr_improvement_pct":     t.MTTRImprovementPct,
	}
}

// ApplyTemplate fills template-backed keys the caller has not set.
// Explicitly-set keys always win over a template value.
func (p Parameters) ApplyTemplate(name string) error {
	t, ok := calculation.TemplateByName(name)
	if !ok {
		return fmt.Errorf("unknown industry template %q", name)
	}
	for key, v := range templateKeyValues(t) {
		if _, set := p[key]; set {
			continue
		}
		switch x := v.(type) {
		case int64:
			p[key] = x
		case decimal.Decimal:
			p[key] = x.InexactFloat64()
		}
	}
	return nil
}

// BuildAssessment binds a flat parameter set into engine input structs.
// The industry template named by the set (default Custom) supplies defaults
// for keys the set does not carry; remaining gaps come from the default
// table. The exported percent-form discount rate is converted to the
// fraction the engine expects.
func BuildAssessment(p Parameters) (*domain.Assessment, error) {
	merged := p.Clone()
	if err := merged.ApplyTemplate(merged.String("industry_template")); err != nil {
		return nil, err
	}

	a := &domain.Assessment{
		SolutionName:     merged.String("solution_name"),
		IndustryTemplate: merged.String("industry_template"),
		CurrencySymbol:   merged.String("currency"),
		Calendar: domain.WorkCalendar{
			HoursPerDay:     merged.Decimal("hours_per_day"),
			DaysPerWeek:     merged.Decimal("days_per_week"),
			WeeksPerYear:    merged.Decimal("weeks_per_year"),
			HolidaySickDays: merged.Decimal("holiday_sick_days"),
		},
		Alerts: domain.Workload{
			Volume:             int64(merged.Int("alert_volume")),
			FTEs:               merged.Decimal("alert_ftes"),
			AvgTriageMinutes:   merged.Decimal("avg_alert_triage_time"),
			AvgSalary:          merged.Decimal("avg_alert_fte_salary"),
			ReductionPct:       merged.Decimal("alert_reduction_pct"),
			TriageTimeSavedPct: merged.Decimal("alert_triage_time_saved_pct"),
		},
		Incidents: domain.Workload{
			Volume:             int64(merged.Int("incident_volume")),
			FTEs:               merged.Decimal("incident_ftes"),
			AvgTriageMinutes:   merged.Decimal("avg_incident_triage_time"),
			AvgSalary:          merged.Decimal("avg_incident_fte_salary"),
			ReductionPct:       merged.Decimal("incident_reduction_pct"),
			TriageTimeSavedPct: merged.Decimal("incident_triage_time_savings_pct"),
		},
		MajorIncidents: domain.MajorIncidents{
			Volume:         int64(merged.Int("major_incident_volume")),
			AvgCostPerHour: merged.Decimal("avg_major_incident_cost"),
			AvgMTTRHours:   merged.Decimal("avg_mttr_hours"),
			ImprovementPct: merged.Decimal("mttr_improvement_pct"),
		},
		Additional: domain.AdditionalBenefits{
			ToolSavings:         merged.Decimal("tool_savings"),
			PeopleEfficiency:    merged.Decimal("people_efficiency"),
			FTEAvoidance:        merged.Decimal("fte_avoidance"),
			SLAPenaltyAvoidance: merged.Decimal("sla_penalty"),
			RevenueGrowth:       merged.Decimal("revenue_growth"),
			CapexSavings:        merged.Decimal("capex_savings"),
			OpexSavings:         merged.Decimal("opex_savings"),
		},
		Costs: domain.Costs{
			AnnualPlatformCost:  merged.Decimal("platform_cost"),
			OneTimeServicesCost: merged.Decimal("services_cost"),
		},
		Timeline: domain.Timeline{
			ImplementationDelayMonths: merged.Int("implementation_delay"),
			RampUpMonths:              merged.Int("benefits_ramp_up"),
			EvaluationYears:           merged.Int("evaluation_years"),
			DiscountRate:              merged.Decimal("discount_rate").Div(decimal.NewFromInt(100)),
		},
	}

	if err := ValidateAssessment(a); err != nil {
		return nil, err
	}
	return a, nil
}
