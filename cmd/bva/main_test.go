package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bva/business-value-calculator/internal/config"
)

const exampleAssessment = "../../test/testdata/example_assessment.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRunCommandConsole(t *testing.T) {
	out, err := execute(t, "run", "--config", exampleAssessment)
	require.NoError(t, err)
	assert.Contains(t, out, "BUSINESS VALUE ASSESSMENT: AIOps Platform")
	assert.Contains(t, out, "Expected:")
}

func TestRunCommandJSONToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.json")
	out, err := execute(t, "run", "-c", exampleAssessment, "-f", "json", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "AIOps Platform", decoded["solution_name"])
}

func TestRunCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "run", "-c", exampleAssessment, "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunCommandMissingConfig(t *testing.T) {
	t.Setenv("BVA_CONFIG", "")
	_, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no assessment file")
}

func TestRunCommandConfigFromEnv(t *testing.T) {
	t.Setenv("BVA_CONFIG", exampleAssessment)
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "BUSINESS VALUE ASSESSMENT")
}

func TestConvertCSVToJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "params.csv")
	dst := filepath.Join(dir, "params.json")

	csvData, err := config.ExportCSV(config.DefaultParameters())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(src, csvData, 0644))

	out, err := execute(t, "convert", src, dst)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	params, report := config.ImportJSON(data)
	require.True(t, report.OK, report.Message)
	assert.Equal(t, "AIOPs", params["solution_name"])
}

func TestConvertUnsupportedExtension(t *testing.T) {
	_, err := execute(t, "convert", "in.toml", "out.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Custom", lines[0])
	assert.Contains(t, lines, "Financial Services")
	assert.Contains(t, lines, "Healthcare")
}
