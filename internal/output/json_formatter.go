package output

import (
	"github.com/goccy/go-json"

	"github.com/bva/business-value-calculator/internal/domain"
)

// JSONFormatter serializes the assessment result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.AssessmentResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
