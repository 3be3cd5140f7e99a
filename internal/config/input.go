package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bva/business-value-calculator/internal/domain"
)

// InputParser handles loading of assessment input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an assessment from a YAML file, or from a flat
// CSV/JSON configuration export, based on the file extension. YAML carries
// the structured domain.Assessment shape; CSV and JSON carry the flat
// parameter mapping.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Assessment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		params, report := ImportCSV(data)
		if !report.OK {
			return nil, fmt.Errorf("failed to import %s: %s", filename, report.Message)
		}
		return BuildAssessment(params)
	case ".json":
		params, report := ImportJSON(data)
		if !report.OK {
			return nil, fmt.Errorf("failed to import %s: %s", filename, report.Message)
		}
		return BuildAssessment(params)
	default:
		var a domain.Assessment
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := ValidateAssessment(&a); err != nil {
			return nil, fmt.Errorf("assessment validation failed: %w", err)
		}
		return &a, nil
	}
}

// ValidateAssessment rejects out-of-range inputs before they reach the
// engine. The engine itself only guards divide-by-zero; range policy
// lives here, at the boundary.
func ValidateAssessment(a *domain.Assessment) error {
	if a.Timeline.EvaluationYears < 1 || a.Timeline.EvaluationYears > 5 {
		return fmt.Errorf("evaluation years must be between 1 and 5, got %d", a.Timeline.EvaluationYears)
	}
	if a.Timeline.ImplementationDelayMonths < 0 || a.Timeline.ImplementationDelayMonths > 24 {
		return fmt.Errorf("implementation delay must be between 0 and 24 months, got %d", a.Timeline.ImplementationDelayMonths)
	}
	if a.Timeline.RampUpMonths < 0 || a.Timeline.RampUpMonths > 12 {
		return fmt.Errorf("ramp-up period must be between 0 and 12 months, got %d", a.Timeline.RampUpMonths)
	}
	if a.Timeline.DiscountRate.IsNegative() || a.Timeline.DiscountRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("discount rate must be between 0%% and 20%%, got %s%%",
			a.Timeline.DiscountRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	if err := validateWorkload("alert", a.Alerts); err != nil {
		return err
	}
	if err := validateWorkload("incident", a.Incidents); err != nil {
		return err
	}

	if a.MajorIncidents.Volume < 0 {
		return fmt.Errorf("major incident volume cannot be negative")
	}
	if a.MajorIncidents.AvgCostPerHour.IsNegative() || a.MajorIncidents.AvgMTTRHours.IsNegative() {
		return fmt.Errorf("major incident cost and MTTR cannot be negative")
	}
	if err := validatePercent("mttr_improvement_pct", a.MajorIncidents.ImprovementPct); err != nil {
		return err
	}

	if a.Costs.AnnualPlatformCost.IsNegative() || a.Costs.OneTimeServicesCost.IsNegative() {
		return fmt.Errorf("costs cannot be negative")
	}

	for i, s := range a.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if !s.BenefitsMultiplier.IsPositive() || !s.DelayMultiplier.IsPositive() {
			return fmt.Errorf("scenario %s multipliers must be positive", s.Name)
		}
	}

	return nil
}

func validateWorkload(name string, w domain.Workload) error {
	if w.Volume < 0 {
		return fmt.Errorf("%s volume cannot be negative", name)
	}
	if w.FTEs.IsNegative() {
		return fmt.Errorf("%s FTE count cannot be negative", name)
	}
	if w.AvgTriageMinutes.IsNegative() {
		return fmt.Errorf("%s triage time cannot be negative", name)
	}
	if w.AvgSalary.IsNegative() {
		return fmt.Errorf("%s salary cannot be negative", name)
	}
	if err := validatePercent(name+" reduction", w.ReductionPct); err != nil {
		return err
	}
	return validatePercent(name+" triage time saved", w.TriageTimeSavedPct)
}

func validatePercent(name string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100, got %s", name, pct.StringFixed(1))
	}
	return nil
}
