package analysis

import (
	"testing"

	"github.com/campuslens/campuslens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMess() models.MessAssumptions {
	return models.MessAssumptions{
		TotalStudents:           650,
		MonthlyFeePerStudent:    4500,
		DaysInMonth:             30,
		DailyFoodCostPerStudent: 90,
		FoodWastagePct:          12,
		LPGFuelMonthly:          55000,
		WaterMonthly:            18000,
		PackagingMonthly:        12000,
		StaffSalaries:           220000,
		Electricity:             45000,
		Maintenance:             20000,
		Rent:                    60000,
		InsuranceMisc:           15000,
	}
}

func TestDeriveMessMetrics(t *testing.T) {
	m := DeriveMessMetrics(baseMess())

	assert.Equal(t, 1755000.0, m.MonthlyRawFoodCost)
	assert.Equal(t, 210600.0, m.MonthlyWastageCost)
	assert.Equal(t, 2050600.0, m.TotalVariableCosts)
	assert.Equal(t, 360000.0, m.TotalFixedCosts)
	assert.Equal(t, 2925000.0, m.TotalRevenue)
	assert.Equal(t, 2410600.0, m.TotalCost)
	assert.Equal(t, 514400.0, m.Profit)
	assert.InDelta(t, 17.59, m.ProfitMarginPct, 0.01)
}

func TestDeriveMessMetricsZeroRevenue(t *testing.T) {
	a := baseMess()
	a.TotalStudents = 0

	m := DeriveMessMetrics(a)

	assert.Equal(t, 0.0, m.TotalRevenue)
	assert.Equal(t, 0.0, m.ProfitMarginPct, "margin must be exactly 0 when revenue is 0")
	assert.Less(t, m.Profit, 0.0, "fixed and utility costs still accrue")
}

func TestMessScenariosOrderAndCount(t *testing.T) {
	scenarios := MessScenarios(baseMess())
	require.Len(t, scenarios, 11)

	wantNames := []string{
		"Base Case (Current)",
		"Wastage Reduced by 5pp",
		"Wastage Reduced by 10pp",
		"Wastage Reduced by 15pp",
		"Operational Efficiency +2%",
		"Operational Efficiency +5%",
		"Operational Efficiency +8%",
		"Fee Increase ₹100/mo",
		"Fee Increase ₹200/mo",
		"Fee Increase ₹300/mo",
		"Combined Optimized Scenario",
	}
	for i, want := range wantNames {
		assert.Equal(t, want, scenarios[i].Name)
	}
}

func TestMessScenarioBaseCaseMatchesDeriver(t *testing.T) {
	base := baseMess()
	scenarios := MessScenarios(base)
	require.NotEmpty(t, scenarios)

	assert.Equal(t, DeriveMessMetrics(base), scenarios[0].Metrics)
}

func TestMessScenarioFeeIncreaseOnlyMovesRevenue(t *testing.T) {
	base := baseMess()
	scenarios := MessScenarios(base)
	baseline := scenarios[0].Metrics
	fee100 := scenarios[7].Metrics

	assert.Equal(t, baseline.TotalCost, fee100.TotalCost)
	assert.Equal(t, baseline.TotalRevenue+float64(base.TotalStudents)*100, fee100.TotalRevenue)
	assert.Equal(t, baseline.Profit+float64(base.TotalStudents)*100, fee100.Profit)
}

func TestMessScenarioEfficiencySparesNonReducibleCosts(t *testing.T) {
	base := baseMess()
	scenarios := MessScenarios(base)
	eff5 := scenarios[5].Metrics

	// Fixed costs drop only by the electricity and maintenance share.
	wantFixed := base.StaffSalaries + base.Electricity*0.95 + base.Maintenance*0.95 + base.Rent + base.InsuranceMisc
	assert.InDelta(t, wantFixed, eff5.TotalFixedCosts, 1e-9)

	// Raw food, wastage and packaging are untouched by the efficiency lever.
	baseline := scenarios[0].Metrics
	assert.Equal(t, baseline.MonthlyRawFoodCost, eff5.MonthlyRawFoodCost)
	assert.Equal(t, baseline.MonthlyWastageCost, eff5.MonthlyWastageCost)
}

func TestMessScenarioWastageBelowZeroFlowsThrough(t *testing.T) {
	// The 15pp reduction takes a 12% base below zero. The model does not
	// clamp it: wastage cost goes negative and inflates profit.
	scenarios := MessScenarios(baseMess())
	reduced := scenarios[3].Metrics

	assert.InDelta(t, -52650.0, reduced.MonthlyWastageCost, 1e-9)
	assert.Greater(t, reduced.Profit, scenarios[0].Metrics.Profit)
}

func TestMessCombinedScenarioLocatableByName(t *testing.T) {
	scenarios := MessScenarios(baseMess())

	combined, ok := FindMessScenario(scenarios, CombinedScenarioToken)
	require.True(t, ok)
	assert.Equal(t, "Combined Optimized Scenario", combined.Name)
	assert.Greater(t, combined.Metrics.Profit, scenarios[0].Metrics.Profit)
}

func TestBreakEvenStudents(t *testing.T) {
	base := baseMess()
	ratio := 2410600.0 / 4500.0
	want := int(ratio) + 1
	assert.Equal(t, want, BreakEvenStudents(base))

	base.MonthlyFeePerStudent = 0
	assert.Equal(t, 0, BreakEvenStudents(base))
}
