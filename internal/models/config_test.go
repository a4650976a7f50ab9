package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 650, cfg.Mess.TotalStudents)
	assert.Equal(t, 4500.0, cfg.Mess.MonthlyFeePerStudent)
	assert.Equal(t, 30, cfg.Mess.DaysInMonth)
	assert.Equal(t, 90.0, cfg.Mess.DailyFoodCostPerStudent)
	assert.Equal(t, 12.0, cfg.Mess.FoodWastagePct)
	assert.Equal(t, 55000.0, cfg.Mess.LPGFuelMonthly)
	assert.Equal(t, 18000.0, cfg.Mess.WaterMonthly)
	assert.Equal(t, 12000.0, cfg.Mess.PackagingMonthly)
	assert.Equal(t, 220000.0, cfg.Mess.StaffSalaries)
	assert.Equal(t, 45000.0, cfg.Mess.Electricity)
	assert.Equal(t, 20000.0, cfg.Mess.Maintenance)
	assert.Equal(t, 60000.0, cfg.Mess.Rent)
	assert.Equal(t, 15000.0, cfg.Mess.InsuranceMisc)

	assert.Equal(t, 18, cfg.OperatingSlots)
	require.Len(t, cfg.Facilities, 7)
	assert.Equal(t, "Gymnasium", cfg.Facilities[0].Name)
	assert.Equal(t, 60, cfg.Facilities[0].MaxCapacity)
	assert.Len(t, cfg.Facilities[0].HourlyUsage, 18)
	assert.Equal(t, ".", cfg.OutputFolder)
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "campuslens.yaml")
	content := []byte(`
mess:
  total_students: 800
  monthly_fee_per_student: 5000
output_folder: /tmp/reports
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Mess.TotalStudents)
	assert.Equal(t, 5000.0, cfg.Mess.MonthlyFeePerStudent)
	assert.Equal(t, "/tmp/reports", cfg.OutputFolder)
	// Untouched keys keep their defaults.
	assert.Equal(t, 12.0, cfg.Mess.FoodWastagePct)
	assert.Len(t, cfg.Facilities, 7)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidAssumptions(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "campuslens.yaml")
	content := []byte(`
mess:
  rent: -1
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAssumption)
}

func TestMessAssumptionsValidate(t *testing.T) {
	base := MessAssumptions{
		TotalStudents:        650,
		MonthlyFeePerStudent: 4500,
		DaysInMonth:          30,
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.TotalStudents = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAssumption)

	bad = base
	bad.StaffSalaries = -0.01
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAssumption)
}

func TestFacilityValidate(t *testing.T) {
	ok := Facility{
		Name:                 "Gym",
		MaxCapacity:          60,
		HourlyUsage:          []int{1, 2, 3},
		OperatingCostPerHour: 450,
	}
	require.NoError(t, ok.Validate(3))

	t.Run("capacity must be positive", func(t *testing.T) {
		f := ok
		f.MaxCapacity = 0
		assert.ErrorIs(t, f.Validate(3), ErrInvalidAssumption)
	})

	t.Run("slot count must match", func(t *testing.T) {
		assert.ErrorIs(t, ok.Validate(18), ErrInvalidAssumption)
	})

	t.Run("usage must be non-negative", func(t *testing.T) {
		f := ok.Clone()
		f.HourlyUsage[1] = -5
		assert.ErrorIs(t, f.Validate(3), ErrInvalidAssumption)
	})

	t.Run("cost must be non-negative", func(t *testing.T) {
		f := ok
		f.OperatingCostPerHour = -1
		assert.ErrorIs(t, f.Validate(3), ErrInvalidAssumption)
	})
}

func TestFacilityCloneIsIndependent(t *testing.T) {
	f := Facility{Name: "Gym", MaxCapacity: 60, HourlyUsage: []int{1, 2, 3}}
	c := f.Clone()
	c.HourlyUsage[0] = 99

	assert.Equal(t, 1, f.HourlyUsage[0])
}

func TestHourLabels(t *testing.T) {
	assert.Equal(t, "6:00", HourLabel(0))
	assert.Equal(t, "23:00", HourLabel(17))
	// Appended slots from the extended-hours scenario wrap past midnight.
	assert.Equal(t, "0:00", HourLabel(18))

	labels := HourLabels(18)
	require.Len(t, labels, 18)
	assert.Equal(t, "7:00", labels[1])
}
