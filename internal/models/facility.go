package models

import "fmt"

// OperatingDayStartHour is the hour of day the first usage slot maps to.
// Slot i covers the hour starting at OperatingDayStartHour+i (6:00, 7:00, ...).
const OperatingDayStartHour = 6

// PeakHourUnavailable is reported when a facility has no usage slots at all.
const PeakHourUnavailable = "unavailable"

// Facility is one campus facility with its capacity and hourly headcounts.
type Facility struct {
	Name                 string  `mapstructure:"name"`
	MaxCapacity          int     `mapstructure:"max_capacity"`
	HourlyUsage          []int   `mapstructure:"hourly_usage"`
	OperatingCostPerHour float64 `mapstructure:"operating_cost_per_hour"`
}

// Validate checks the facility invariants against the configured slot count.
func (f Facility) Validate(slots int) error {
	if f.MaxCapacity <= 0 {
		return fmt.Errorf("%w: facility %q max_capacity must be > 0, got %d", ErrInvalidAssumption, f.Name, f.MaxCapacity)
	}
	if f.OperatingCostPerHour < 0 {
		return fmt.Errorf("%w: facility %q operating_cost_per_hour must be >= 0, got %g", ErrInvalidAssumption, f.Name, f.OperatingCostPerHour)
	}
	if len(f.HourlyUsage) != slots {
		return fmt.Errorf("%w: facility %q has %d usage slots, expected %d", ErrInvalidAssumption, f.Name, len(f.HourlyUsage), slots)
	}
	for i, u := range f.HourlyUsage {
		if u < 0 {
			return fmt.Errorf("%w: facility %q usage slot %d must be >= 0, got %d", ErrInvalidAssumption, f.Name, i, u)
		}
	}
	return nil
}

// Clone returns a copy of the facility with its own usage slice, so scenario
// variants never share a backing array with the base dataset.
func (f Facility) Clone() Facility {
	c := f
	c.HourlyUsage = append([]int(nil), f.HourlyUsage...)
	return c
}

// HourLabel maps a slot index to its clock label ("6:00" for slot 0).
// Scenario variants may append slots past the regular operating day, so the
// label wraps at midnight rather than indexing a fixed-length table.
func HourLabel(slot int) string {
	return fmt.Sprintf("%d:00", (OperatingDayStartHour+slot)%24)
}

// HourLabels returns labels for n consecutive slots starting at 6:00.
func HourLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = HourLabel(i)
	}
	return labels
}
