package console

import (
	"bytes"
	"testing"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMessSummary(t *testing.T) {
	a := models.MessAssumptions{
		TotalStudents:           650,
		MonthlyFeePerStudent:    4500,
		DaysInMonth:             30,
		DailyFoodCostPerStudent: 90,
		FoodWastagePct:          12,
		LPGFuelMonthly:          85000,
		WaterMonthly:            18000,
		PackagingMonthly:        12000,
		StaffSalaries:           180000,
		Electricity:             45000,
		Maintenance:             25000,
		Rent:                    60000,
		InsuranceMisc:           50000,
	}
	m := analysis.DeriveMessMetrics(a)
	scenarios := analysis.MessScenarios(a)

	var buf bytes.Buffer
	MessSummary(&buf, m, scenarios)
	out := buf.String()

	assert.Contains(t, out, "College Mess Profitability Optimization Model")
	assert.Contains(t, out, "Monthly Revenue")
	assert.Contains(t, out, "₹2,925,000")
	assert.Contains(t, out, "Base Case (Current)")
	assert.Contains(t, out, "Combined Optimized Scenario")
}

func TestFacilitySummary(t *testing.T) {
	facilities := models.DefaultFacilities()
	agg := analysis.Aggregate(facilities)
	scenarios := analysis.FacilityScenarios(facilities)

	var buf bytes.Buffer
	FacilitySummary(&buf, facilities, agg, scenarios)
	out := buf.String()

	assert.Contains(t, out, "Campus Resource Utilization Analysis")
	for _, fac := range facilities {
		assert.Contains(t, out, fac.Name)
	}
	assert.Contains(t, out, "Overall Avg Utilization")
	for _, sc := range scenarios {
		assert.Contains(t, out, sc.Name)
	}
}

func TestPadCountsRunes(t *testing.T) {
	assert.Equal(t, "   ₹100", pad("₹100", 7))
	assert.Equal(t, "₹100", pad("₹100", 3))
}
