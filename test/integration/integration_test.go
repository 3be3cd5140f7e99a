package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bva/business-value-calculator/internal/calculation"
	"github.com/bva/business-value-calculator/internal/config"
)

func TestEndToEndAssessment(t *testing.T) {
	// Test that we can load an assessment and run the full projection
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")

	require.NoError(t, err)
	require.NotNil(t, assessment)
	assert.Equal(t, "AIOps Platform", assessment.SolutionName)
	assert.Equal(t, decimal.NewFromInt(1880), assessment.Calendar.AnnualWorkingHours())

	engine := calculation.NewEngine()
	require.NotNil(t, engine)

	result := engine.Run(assessment)
	require.NotNil(t, result)

	// No scenarios in the file means the default three are evaluated.
	require.Len(t, result.Scenarios, 3)
	assert.NotNil(t, result.Scenario("Conservative"))
	assert.NotNil(t, result.Scenario("Expected"))
	assert.NotNil(t, result.Scenario("Optimistic"))

	// Basic sanity on the baseline economics
	assert.True(t, result.TotalAnnualBenefits.GreaterThan(decimal.Zero))
	assert.True(t, result.AlertAllocation.CostPerUnit.GreaterThan(decimal.Zero))
	assert.True(t, result.IncidentAllocation.CostPerUnit.GreaterThan(decimal.Zero))
	assert.True(t, result.AlertAllocation.FTETimeFraction.LessThan(decimal.NewFromInt(1)))
	assert.True(t, result.Summary.EquivalentFTEs.GreaterThan(decimal.Zero))

	for _, sc := range result.Scenarios {
		assert.Len(t, sc.CashFlows, 3, "%s cash flows", sc.Name)
		assert.Len(t, sc.MonthlyCashFlows, 37, "%s monthly cash flows", sc.Name)
		assert.True(t, sc.AnnualBenefits.GreaterThan(decimal.Zero), "%s annual benefits", sc.Name)
		assert.True(t, sc.NPV.GreaterThan(decimal.Zero), "%s npv", sc.Name)
		assert.True(t, sc.PaybackYears.Reached, "%s payback years", sc.Name)
		assert.True(t, sc.PaybackMonths.Reached, "%s payback months", sc.Name)
	}

	// Benefits multipliers order the scenario outcomes.
	conservative := result.Scenario("Conservative")
	expected := result.Scenario("Expected")
	optimistic := result.Scenario("Optimistic")
	assert.True(t, conservative.NPV.LessThan(expected.NPV))
	assert.True(t, expected.NPV.LessThan(optimistic.NPV))
}

func TestAssessmentValidation(t *testing.T) {
	parser := config.NewInputParser()

	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")
	require.NoError(t, err)
	require.NotNil(t, assessment)

	// A loaded file is already validated; re-validating is a no-op.
	assert.NoError(t, config.ValidateAssessment(assessment))

	// Mutating it out of range is caught.
	assessment.Timeline.EvaluationYears = 9
	assert.Error(t, config.ValidateAssessment(assessment))
}

func TestRunIsDeterministic(t *testing.T) {
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	first := engine.Run(assessment)
	second := engine.Run(assessment)

	require.Len(t, second.Scenarios, len(first.Scenarios))
	for i := range first.Scenarios {
		assert.True(t, first.Scenarios[i].NPV.Equal(second.Scenarios[i].NPV))
		assert.True(t, first.Scenarios[i].ROI.Equal(second.Scenarios[i].ROI))
	}
}
