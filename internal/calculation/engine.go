package calculation

import (
	"github.com/bva/business-value-calculator/internal/domain"
)

// Engine orchestrates a full business-value assessment run. It holds no
// state between runs besides the logger; every Run builds fresh records
// from the assessment it is handed, so repeated invocations never leak
// values into each other.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes the full pipeline for one assessment: cost allocations,
// the annual benefit baseline, one result per scenario definition (the
// default set when the assessment names none), the executive savings
// summary, and advisory warnings.
func (e *Engine) Run(a *domain.Assessment) *domain.AssessmentResult {
	alertAlloc := AllocateCost(a.Alerts, a.Calendar)
	incidentAlloc := AllocateCost(a.Incidents, a.Calendar)

	benefits := BenefitBaseline(a, alertAlloc, incidentAlloc)
	totalBenefits := benefits.Total()

	e.Logger.Debugf("cost per alert %s, cost per incident %s, total annual benefits %s",
		alertAlloc.CostPerUnit.StringFixed(2), incidentAlloc.CostPerUnit.StringFixed(2), totalBenefits.StringFixed(2))

	defs := a.Scenarios
	if len(defs) == 0 {
		defs = DefaultScenarios()
	}

	scenarios := make([]domain.ScenarioResult, len(defs))
	for i, def := range defs {
		scenarios[i] = RunScenario(def, totalBenefits, a.Timeline, a.Costs)
		e.Logger.Debugf("scenario %s: NPV %s, ROI %s",
			def.Name, scenarios[i].NPV.StringFixed(2), scenarios[i].ROI.StringFixed(4))
	}

	result := &domain.AssessmentResult{
		SolutionName:        a.SolutionName,
		CurrencySymbol:      a.CurrencySymbol,
		AlertAllocation:     alertAlloc,
		IncidentAllocation:  incidentAlloc,
		Benefits:            benefits,
		TotalAnnualBenefits: totalBenefits,
		Scenarios:           scenarios,
		Summary:             SummarizeSavings(a, benefits),
	}
	result.Warnings = Advise(a, result)

	for _, w := range result.Warnings {
		e.Logger.Warnf("%s: %s", w.Code, w.Message)
	}

	return result
}
