package report

import (
	"testing"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testAssumptions() models.MessAssumptions {
	return models.MessAssumptions{
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
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestBuildMessWorkbook(t *testing.T) {
	a := testAssumptions()
	m := analysis.DeriveMessMetrics(a)
	scenarios := analysis.MessScenarios(a)

	f, err := BuildMessWorkbook(a, m, scenarios, "run-1")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, MessSheets, f.GetSheetList())

	// Dataset holds the raw assumptions.
	assert.Equal(t, "Student & Pricing", raw(t, f, "Dataset", "A4"))
	assert.Equal(t, "Total Students Enrolled", raw(t, f, "Dataset", "B4"))
	assert.Equal(t, "650", raw(t, f, "Dataset", "C4"))

	// P&L revenue line.
	assert.Equal(t, "REVENUE", raw(t, f, "Financial Model", "A4"))
	assert.Equal(t, "2925000", raw(t, f, "Financial Model", "B5"))

	// Scenario table: 11 rows starting at row 4, base first, combined last.
	assert.Equal(t, "Base Case (Current)", raw(t, f, "Optimization Scenarios", "A4"))
	assert.Equal(t, "Combined Optimized Scenario", raw(t, f, "Optimization Scenarios", "A14"))
	assert.Empty(t, raw(t, f, "Optimization Scenarios", "A15"))

	// Dashboard KPI strip.
	assert.Equal(t, "Monthly Revenue", raw(t, f, "Dashboard", "A3"))
	assert.Equal(t, "2925000", raw(t, f, "Dashboard", "A4"))
	assert.Equal(t, "Break-even Students", raw(t, f, "Dashboard", "F3"))

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "campuslens", props.Creator)
	assert.Equal(t, "run run-1", props.Description)
}

func TestBuildFacilityWorkbook(t *testing.T) {
	facilities := models.DefaultFacilities()
	agg := analysis.Aggregate(facilities)
	scenarios := analysis.FacilityScenarios(facilities)

	f, err := BuildFacilityWorkbook(facilities, agg, scenarios, "run-2")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, FacilitySheets, f.GetSheetList())

	// Dataset usage matrix: facility, capacity, then one column per slot.
	assert.Equal(t, "Facility", raw(t, f, "Dataset", "A3"))
	assert.Equal(t, "6:00", raw(t, f, "Dataset", "C3"))
	assert.Equal(t, "23:00", raw(t, f, "Dataset", "T3"))
	assert.Equal(t, "Gymnasium", raw(t, f, "Dataset", "A4"))
	assert.Equal(t, "60", raw(t, f, "Dataset", "B4"))
	assert.Equal(t, "8", raw(t, f, "Dataset", "C4"))

	// Operating cost block sits three rows under the matrix.
	costHeader := 3 + len(facilities) + 3
	assert.Equal(t, "Operating Costs per Facility", raw(t, f, "Dataset", cellRef(1, costHeader)))
	assert.Equal(t, "450", raw(t, f, "Dataset", cellRef(2, costHeader+2)))

	// Per-facility metrics table.
	assert.Equal(t, "Gymnasium", raw(t, f, "Utilization Metrics", "A4"))
	assert.Equal(t, "50", raw(t, f, "Utilization Metrics", "C4"))

	// Scenario table: 7 rows, base first, combined last.
	assert.Equal(t, "Base Case (Current)", raw(t, f, "Optimization Scenarios", "A4"))
	assert.Equal(t, "Combined Optimized", raw(t, f, "Optimization Scenarios", "A10"))
	assert.Empty(t, raw(t, f, "Optimization Scenarios", "A11"))

	assert.Equal(t, "Avg Utilization", raw(t, f, "Dashboard", "A3"))
	assert.Equal(t, "Total Idle Hours", raw(t, f, "Dashboard", "F3"))
}

func TestBuildFacilityWorkbookEmpty(t *testing.T) {
	_, err := BuildFacilityWorkbook(nil, analysis.AggregateMetrics{}, nil, "run-3")
	require.Error(t, err)
}
