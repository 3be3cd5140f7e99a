package integration

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bva/business-value-calculator/internal/calculation"
	"github.com/bva/business-value-calculator/internal/config"
	"github.com/bva/business-value-calculator/internal/output"
)

func TestReportGeneration(t *testing.T) {
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")
	require.NoError(t, err)

	result := calculation.NewEngine().Run(assessment)

	// Every built-in formatter renders a real engine result without error.
	for _, name := range output.AvailableFormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter, name)

		data, err := formatter.Format(result)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestConsoleReportContent(t *testing.T) {
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")
	require.NoError(t, err)

	result := calculation.NewEngine().Run(assessment)

	data, err := output.GetFormatterByName("console").Format(result)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "BUSINESS VALUE ASSESSMENT: AIOps Platform")
	assert.Contains(t, content, "Conservative:")
	assert.Contains(t, content, "Expected:")
	assert.Contains(t, content, "Optimistic:")
	assert.Equal(t, 3, strings.Count(content, "Year 3:"))
}

func TestJSONReportRoundTrips(t *testing.T) {
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile("../testdata/example_assessment.yaml")
	require.NoError(t, err)

	result := calculation.NewEngine().Run(assessment)

	data, err := output.GetFormatterByName("json").Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "AIOps Platform", decoded["solution_name"])

	scenarios, ok := decoded["scenarios"].([]any)
	require.True(t, ok)
	assert.Len(t, scenarios, 3)
}
