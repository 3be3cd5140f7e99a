package output

import (
	"bytes"
	"fmt"

	"github.com/bva/business-value-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.AssessmentResult) ([]byte, error) {
	var buf bytes.Buffer
	sym := result.CurrencySymbol

	fmt.Fprintf(&buf, "BUSINESS VALUE ASSESSMENT: %s\n", result.SolutionName)
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "Cost per Alert:          %s\n", FormatCurrency(sym, result.AlertAllocation.CostPerUnit))
	fmt.Fprintf(&buf, "Cost per Incident:       %s\n", FormatCurrency(sym, result.IncidentAllocation.CostPerUnit))
	fmt.Fprintf(&buf, "FTE Time on Alerts:      %s\n", FormatPercentage(result.AlertAllocation.FTETimeFraction))
	fmt.Fprintf(&buf, "FTE Time on Incidents:   %s\n", FormatPercentage(result.IncidentAllocation.FTETimeFraction))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Operational Savings:     %s\n", FormatCurrency(sym, result.Benefits.OperationalSavings()))
	fmt.Fprintf(&buf, "Additional Benefits:     %s\n", FormatCurrency(sym, result.Benefits.AdditionalBenefits))
	fmt.Fprintf(&buf, "Total Annual Benefits:   %s\n", FormatCurrency(sym, result.TotalAnnualBenefits))
	fmt.Fprintf(&buf, "Equivalent FTEs Freed:   %s\n", result.Summary.EquivalentFTEs.StringFixed(1))
	fmt.Fprintln(&buf)

	for _, sc := range result.Scenarios {
		fmt.Fprintf(&buf, "%s: NPV=%s ROI=%s Payback=%s (%s)\n",
			sc.Name,
			FormatCurrency(sym, sc.NPV),
			FormatPercentage(sc.ROI),
			FormatPaybackYears(sc.PaybackYears),
			FormatPaybackMonths(sc.PaybackMonths),
		)
		for _, cf := range sc.CashFlows {
			fmt.Fprintf(&buf, "  Year %d: benefits=%s net=%s realization=%s\n",
				cf.Year,
				FormatCurrency(sym, cf.Benefits),
				FormatCurrency(sym, cf.NetCashFlow),
				FormatPercentage(cf.RealizationFactor),
			)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Warnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(&buf, "  [%s] %s\n", w.Code, w.Message)
		}
	}

	return buf.Bytes(), nil
}
