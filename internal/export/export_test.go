package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/models"
)

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"", "csv", "parquet"} {
		f, err := ParseFormat(ok)
		require.NoError(t, err)
		assert.Equal(t, Format(ok), f)
	}
	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "mess_scenarios.csv", FormatCSV.FileName("mess_scenarios"))
	assert.Equal(t, "facility_scenarios.parquet", FormatParquet.FileName("facility_scenarios"))
}

func TestMessScenariosCSV(t *testing.T) {
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
	scenarios := analysis.MessScenarios(a)
	path := filepath.Join(t.TempDir(), "mess_scenarios.csv")

	require.NoError(t, MessScenarios(path, FormatCSV, scenarios))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(scenarios)+1)
	assert.Equal(t, "scenario", records[0][0])
	assert.Equal(t, "Base Case (Current)", records[1][0])
	assert.Equal(t, "2925000.00", records[1][1])
	assert.Equal(t, "Combined Optimized Scenario", records[len(scenarios)][0])
}

func TestFacilityScenariosCSV(t *testing.T) {
	facilities := models.DefaultFacilities()
	scenarios := analysis.FacilityScenarios(facilities)
	path := filepath.Join(t.TempDir(), "facility_scenarios.csv")

	require.NoError(t, FacilityScenarios(path, FormatCSV, scenarios))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(scenarios)+1)
	assert.Equal(t, "Base Case (Current)", records[1][0])
	assert.Equal(t, "Combined Optimized", records[len(scenarios)][0])
}

func TestMessScenariosParquet(t *testing.T) {
	a := models.MessAssumptions{
		TotalStudents:        10,
		MonthlyFeePerStudent: 100,
		DaysInMonth:          30,
	}
	scenarios := analysis.MessScenarios(a)
	path := filepath.Join(t.TempDir(), "mess_scenarios.parquet")

	require.NoError(t, MessScenarios(path, FormatParquet, scenarios))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestUnsupportedFormat(t *testing.T) {
	err := MessScenarios(filepath.Join(t.TempDir(), "x"), Format("xlsx"), nil)
	assert.Error(t, err)
}
