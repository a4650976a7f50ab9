package analysis

import (
	"fmt"
	"strings"

	"github.com/campuslens/campuslens/internal/models"
)

// CombinedScenarioToken appears in the name of the combined scenario in both
// generators, so consumers can locate it in the ordered list by name match.
const CombinedScenarioToken = "Combined"

// MessMetrics is the derived monthly P&L for one set of mess assumptions.
// Metrics are never stored; they are recomputed from the assumptions on use.
type MessMetrics struct {
	MonthlyRawFoodCost float64
	MonthlyWastageCost float64
	TotalVariableCosts float64
	TotalFixedCosts    float64
	TotalRevenue       float64
	TotalCost          float64
	Profit             float64
	ProfitMarginPct    float64
}

// MessScenario is a named metrics snapshot for one variant assumption set.
// The variant itself is discarded once the metrics are derived.
type MessScenario struct {
	Name    string
	Metrics MessMetrics
}

// DeriveMessMetrics computes the monthly P&L from the assumption set. It is
// total over non-negative finite inputs: a zero-revenue month yields a zero
// margin rather than a division failure.
func DeriveMessMetrics(a models.MessAssumptions) MessMetrics {
	m := MessMetrics{}
	m.MonthlyRawFoodCost = float64(a.TotalStudents) * a.DailyFoodCostPerStudent * float64(a.DaysInMonth)
	m.MonthlyWastageCost = m.MonthlyRawFoodCost * (a.FoodWastagePct / 100)
	m.TotalVariableCosts = m.MonthlyRawFoodCost + m.MonthlyWastageCost +
		a.LPGFuelMonthly + a.WaterMonthly + a.PackagingMonthly
	m.TotalFixedCosts = a.StaffSalaries + a.Electricity + a.Maintenance + a.Rent + a.InsuranceMisc
	m.TotalRevenue = float64(a.TotalStudents) * a.MonthlyFeePerStudent
	m.TotalCost = m.TotalVariableCosts + m.TotalFixedCosts
	m.Profit = m.TotalRevenue - m.TotalCost
	if m.TotalRevenue != 0 {
		m.ProfitMarginPct = m.Profit / m.TotalRevenue * 100
	}
	return m
}

// BreakEvenStudents is the smallest enrolment that covers total cost at the
// current fee. Zero when the fee is zero.
func BreakEvenStudents(a models.MessAssumptions) int {
	if a.MonthlyFeePerStudent == 0 {
		return 0
	}
	m := DeriveMessMetrics(a)
	return int(m.TotalCost/a.MonthlyFeePerStudent) + 1
}

// MessScenarios returns the fixed eleven-scenario list for the mess model.
// Index 0 is always the unmodified base case; the order of the rest is part
// of the contract, and the combined scenario is found by name.
//
// Wastage reductions subtract percentage points with no floor at zero,
// matching the source model: a base rate below the reduction flows through
// as a negative wastage cost.
func MessScenarios(base models.MessAssumptions) []MessScenario {
	scenarios := make([]MessScenario, 0, 11)
	snap := func(name string, a models.MessAssumptions) {
		scenarios = append(scenarios, MessScenario{Name: name, Metrics: DeriveMessMetrics(a)})
	}

	snap("Base Case (Current)", base)

	for _, reduction := range []float64{5, 10, 15} {
		v := base
		v.FoodWastagePct -= reduction
		snap(fmt.Sprintf("Wastage Reduced by %gpp", reduction), v)
	}

	// Efficiency drives only lpg, water, electricity and maintenance; rent,
	// salaries, insurance and packaging are non-reducible categories.
	for _, eff := range []float64{2, 5, 8} {
		factor := 1 - eff/100
		v := base
		v.LPGFuelMonthly *= factor
		v.WaterMonthly *= factor
		v.Electricity *= factor
		v.Maintenance *= factor
		snap(fmt.Sprintf("Operational Efficiency +%g%%", eff), v)
	}

	for _, bump := range []float64{100, 200, 300} {
		v := base
		v.MonthlyFeePerStudent += bump
		snap(fmt.Sprintf("Fee Increase ₹%g/mo", bump), v)
	}

	combined := base
	combined.MonthlyFeePerStudent += 200
	combined.FoodWastagePct -= 10
	combined.LPGFuelMonthly *= 0.95
	combined.WaterMonthly *= 0.95
	combined.Electricity *= 0.95
	combined.Maintenance *= 0.95
	snap("Combined Optimized Scenario", combined)

	return scenarios
}

// FindMessScenario returns the first scenario whose name contains token.
func FindMessScenario(scenarios []MessScenario, token string) (MessScenario, bool) {
	for _, s := range scenarios {
		if strings.Contains(s.Name, token) {
			return s, true
		}
	}
	return MessScenario{}, false
}
