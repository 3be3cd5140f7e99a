package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/bva/business-value-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.AssessmentResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AnnualBenefits", "NPV", "ROI", "TCO", "PaybackYears", "PaybackMonths", "ImplementationDelayMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range result.Scenarios {
		row := []string{
			sc.Name,
			sc.AnnualBenefits.StringFixed(2),
			sc.NPV.StringFixed(2),
			sc.ROI.StringFixed(4),
			sc.TCO.StringFixed(2),
			FormatPaybackYears(sc.PaybackYears),
			FormatPaybackMonths(sc.PaybackMonths),
			strconv.Itoa(sc.ImplementationDelayMonths),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
