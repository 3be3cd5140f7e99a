package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bva/business-value-calculator/internal/domain"
)

func testTimeline(delay, ramp, years int) domain.Timeline {
	return domain.Timeline{
		ImplementationDelayMonths: delay,
		RampUpMonths:              ramp,
		EvaluationYears:           years,
		DiscountRate:              decimal.NewFromFloat(0.10),
	}
}

func TestProjectCashFlowsYearAveraging(t *testing.T) {
	// Delay 6, ramp 3: year 1 months are 0,0,0,0,0,0,1/3,2/3,1,1,1,1,
	// averaging 5/12. Year 2 onward is fully realized.
	benefits := decimal.NewFromInt(120000)
	costs := domain.Costs{
		AnnualPlatformCost:  decimal.NewFromInt(10000),
		OneTimeServicesCost: decimal.NewFromInt(5000),
	}

	flows := ProjectCashFlows(benefits, testTimeline(6, 3, 3), costs)
	require.Len(t, flows, 3)

	year1 := flows[0]
	assert.Equal(t, 1, year1.Year)
	assert.InDelta(t, 5.0/12.0, year1.RealizationFactor.InexactFloat64(), 1e-9)
	assert.InDelta(t, 50000.0, year1.Benefits.InexactFloat64(), 1e-6)
	assert.True(t, year1.ServicesCost.Equal(costs.OneTimeServicesCost), "services cost belongs to year 1")
	assert.InDelta(t, 50000.0-10000.0-5000.0, year1.NetCashFlow.InexactFloat64(), 1e-6)

	for _, cf := range flows[1:] {
		assert.True(t, cf.RealizationFactor.Equal(decimal.NewFromInt(1)))
		assert.True(t, cf.Benefits.Equal(benefits))
		assert.True(t, cf.ServicesCost.IsZero(), "services cost charged only once")
		assert.True(t, cf.NetCashFlow.Equal(benefits.Sub(costs.AnnualPlatformCost)))
	}
}

func TestProjectCashFlowsZeroRamp(t *testing.T) {
	benefits := decimal.NewFromInt(120000)
	flows := ProjectCashFlows(benefits, testTimeline(6, 0, 2), domain.Costs{})
	require.Len(t, flows, 2)

	// Months 7-12 at full benefit, no ramp division.
	assert.InDelta(t, 0.5, flows[0].RealizationFactor.InexactFloat64(), 1e-9)
	assert.True(t, flows[1].RealizationFactor.Equal(decimal.NewFromInt(1)))
}

func TestProjectMonthlyCashFlows(t *testing.T) {
	benefits := decimal.NewFromInt(120000)
	costs := domain.Costs{
		AnnualPlatformCost:  decimal.NewFromInt(12000),
		OneTimeServicesCost: decimal.NewFromInt(5000),
	}

	flows := ProjectMonthlyCashFlows(benefits, testTimeline(2, 2, 1), costs)
	require.Len(t, flows, 13, "month 0 plus 12 months")

	// Month 0 is the upfront services outlay, nothing else.
	assert.Equal(t, 0, flows[0].Month)
	assert.True(t, flows[0].NetCashFlow.Equal(decimal.NewFromInt(-5000)))
	assert.True(t, flows[0].CumulativeNetCashFlow.Equal(decimal.NewFromInt(-5000)))

	// Months 1-2: no benefit, platform cost only.
	assert.True(t, flows[1].NetCashFlow.Equal(decimal.NewFromInt(-1000)))
	assert.True(t, flows[2].CumulativeNetCashFlow.Equal(decimal.NewFromInt(-7000)))

	// Month 3: halfway up the ramp, 10000/2 - 1000.
	assert.InDelta(t, 4000.0, flows[3].NetCashFlow.InexactFloat64(), 1e-9)

	// Month 5 onward: full benefit.
	assert.InDelta(t, 9000.0, flows[5].NetCashFlow.InexactFloat64(), 1e-9)

	// Cumulative column is consistent with the per-month column.
	running := decimal.Zero
	for _, mf := range flows {
		running = running.Add(mf.NetCashFlow)
		assert.True(t, mf.CumulativeNetCashFlow.Equal(running), "month %d", mf.Month)
	}
}
