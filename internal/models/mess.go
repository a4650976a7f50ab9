package models

import "fmt"

// MessAssumptions holds the monthly input parameters for the mess P&L model.
// It is a plain value type: scenario variants are built by copying it and
// overriding individual fields, so it is never mutated after construction.
type MessAssumptions struct {
	// Student & pricing
	TotalStudents        int     `mapstructure:"total_students"`
	MonthlyFeePerStudent float64 `mapstructure:"monthly_fee_per_student"`
	DaysInMonth          int     `mapstructure:"days_in_month"`

	// Variable food cost
	DailyFoodCostPerStudent float64 `mapstructure:"daily_food_cost_per_student"`
	FoodWastagePct          float64 `mapstructure:"food_wastage_pct"`

	// Other variable costs (monthly totals)
	LPGFuelMonthly   float64 `mapstructure:"lpg_fuel_monthly"`
	WaterMonthly     float64 `mapstructure:"water_monthly"`
	PackagingMonthly float64 `mapstructure:"packaging_disposables_monthly"`

	// Fixed costs (monthly)
	StaffSalaries float64 `mapstructure:"staff_salaries"`
	Electricity   float64 `mapstructure:"electricity"`
	Maintenance   float64 `mapstructure:"maintenance"`
	Rent          float64 `mapstructure:"rent"`
	InsuranceMisc float64 `mapstructure:"insurance_misc"`
}

// Validate checks the non-negativity invariants on configured inputs.
// Scenario variants are not re-validated: the wastage-reduction scenarios may
// push FoodWastagePct below zero, which the model lets flow through.
func (a MessAssumptions) Validate() error {
	if a.TotalStudents < 0 {
		return fmt.Errorf("%w: mess total_students must be >= 0, got %d", ErrInvalidAssumption, a.TotalStudents)
	}
	if a.DaysInMonth < 0 {
		return fmt.Errorf("%w: mess days_in_month must be >= 0, got %d", ErrInvalidAssumption, a.DaysInMonth)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly_fee_per_student", a.MonthlyFeePerStudent},
		{"daily_food_cost_per_student", a.DailyFoodCostPerStudent},
		{"food_wastage_pct", a.FoodWastagePct},
		{"lpg_fuel_monthly", a.LPGFuelMonthly},
		{"water_monthly", a.WaterMonthly},
		{"packaging_disposables_monthly", a.PackagingMonthly},
		{"staff_salaries", a.StaffSalaries},
		{"electricity", a.Electricity},
		{"maintenance", a.Maintenance},
		{"rent", a.Rent},
		{"insurance_misc", a.InsuranceMisc},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: mess %s must be >= 0, got %g", ErrInvalidAssumption, f.name, f.value)
		}
	}
	return nil
}
