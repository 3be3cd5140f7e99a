package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// IndustryTemplate is a partial set of benchmark values for one vertical.
// Templates are static data applied as defaults only; a field the user has
// explicitly set always wins. Zero-valued template fields are "no opinion".
type IndustryTemplate struct {
	AlertVolume           int64
	AvgAlertTriageMinutes decimal.Decimal
	AlertReductionPct     decimal.Decimal

	IncidentVolume           int64
	AvgIncidentTriageMinutes decimal.Decimal
	IncidentReductionPct     decimal.Decimal

	MajorIncidentVolume int64
	MTTRImprovementPct  decimal.Decimal
}

// industryTemplates holds the benchmark table. "Custom" is the empty
// template.
var industryTemplates = map[string]IndustryTemplate{
	"Custom": {},
	"Financial Services": {
		AlertVolume:              1_200_000,
		AvgAlertTriageMinutes:    decimal.NewFromInt(25),
		AlertReductionPct:        decimal.NewFromInt(40),
		IncidentVolume:           400_000,
		AvgIncidentTriageMinutes: decimal.NewFromInt(30),
		IncidentReductionPct:     decimal.NewFromInt(40),
		MajorIncidentVolume:      140,
		MTTRImprovementPct:       decimal.NewFromInt(40),
	},
	"Retail": {
		AlertVolume:              600_000,
		AvgAlertTriageMinutes:    decimal.NewFromInt(20),
		AlertReductionPct:        decimal.NewFromInt(30),
		IncidentVolume:           200_000,
		AvgIncidentTriageMinutes: decimal.NewFromInt(25),
		IncidentReductionPct:     decimal.NewFromInt(30),
		MajorIncidentVolume:      80,
		MTTRImprovementPct:       decimal.NewFromInt(30),
	},
	"MSP": {
		AlertVolume:              2_500_000,
		AvgAlertTriageMinutes:    decimal.NewFromInt(35),
		AlertReductionPct:        decimal.NewFromInt(50),
		IncidentVolume:           800_000,
		AvgIncidentTriageMinutes: decimal.NewFromInt(35),
		IncidentReductionPct:     decimal.NewFromInt(50),
		MajorIncidentVolume:      200,
		MTTRImprovementPct:       decimal.NewFromInt(50),
	},
	"Healthcare": {
		AlertVolume:              800_000,
		AvgAlertTriageMinutes:    decimal.NewFromInt(30),
		AlertReductionPct:        decimal.NewFromInt(35),
		IncidentVolume:           300_000,
		AvgIncidentTriageMinutes: decimal.NewFromInt(30),
		IncidentReductionPct:     decimal.NewFromInt(35),
		MajorIncidentVolume:      100,
		MTTRImprovementPct:       decimal.NewFromInt(35),
	},
	"Telecom": {
		AlertVolume:              1_800_000,
		AvgAlertTriageMinutes:    decimal.NewFromInt(35),
		AlertReductionPct:        decimal.NewFromInt(45),
		IncidentVolume:           600_000,
		AvgIncidentTriageMinutes: decimal.NewFromInt(35),
		IncidentReductionPct:     decimal.NewFromInt(40),
		MajorIncidentVolume:      160,
		MTTRImprovementPct:       decimal.NewFromInt(45),
	},
}

// TemplateByName looks a template up. The second return is false for
// unknown names.
func TemplateByName(name string) (IndustryTemplate, bool) {
	t, ok := industryTemplates[name]
	return t, ok
}

// TemplateNames lists the available templates in alphabetical order, with
// Custom first.
func TemplateNames() []string {
	names := make([]string, 0, len(industryTemplates))
	for name := range industryTemplates {
		if name != "Custom" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"Custom"}, names...)
}
