package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campuslens/campuslens/internal/models"
)

// Utilization thresholds shared by the metrics deriver and the scenario
// generator. Idle (20%) and overcrowded (85%) are disjoint, so a slot is
// never counted in both buckets.
const (
	idleThresholdPct        = 0.20
	overcrowdedThresholdPct = 0.85
	closeSlotThresholdPct   = 0.15
	extendUtilizationPct    = 50.0
	extendedPeakShare       = 0.30
	rightSizeUtilizationPct = 40.0
	rightSizePeakFactor     = 1.2
	combinedCostFactor      = 0.95
)

// FacilityMetrics is the derived utilization profile of a single facility.
type FacilityMetrics struct {
	OperatingHours         int
	TotalPersonHours       int
	MaxPossiblePersonHours int
	AvgUtilizationPct      float64
	PeakUsage              int
	PeakUtilizationPct     float64
	PeakHour               string
	IdleHours              int
	OvercrowdedHours       int
	IdleCapacityPct        float64
	DailyOperatingCost     float64
	CostPerPersonHour      float64
}

// AggregateMetrics sums person-hour numerators and denominators across a
// facility collection before dividing, so utilization is person-hour-weighted
// rather than an average of per-facility percentages.
type AggregateMetrics struct {
	TotalPersonHours       int
	MaxPossiblePersonHours int
	AvgUtilizationPct      float64
	IdleHours              int
	OvercrowdedHours       int
	IdleCapacityPct        float64
	DailyOperatingCost     float64
	CostPerPersonHour      float64
}

// FacilityScenario is a named aggregate snapshot for one variant of the
// facility collection.
type FacilityScenario struct {
	Name    string
	Metrics AggregateMetrics
}

// DeriveFacilityMetrics computes the utilization profile of one facility.
// All ratios guard their denominators and report 0 instead of failing.
func DeriveFacilityMetrics(f models.Facility) FacilityMetrics {
	m := FacilityMetrics{
		OperatingHours: len(f.HourlyUsage),
		PeakHour:       models.PeakHourUnavailable,
	}
	peakSlot := -1
	for i, u := range f.HourlyUsage {
		m.TotalPersonHours += u
		if u > m.PeakUsage || peakSlot == -1 {
			m.PeakUsage = u
			peakSlot = i
		}
	}
	if peakSlot >= 0 {
		m.PeakHour = models.HourLabel(peakSlot)
	}

	m.MaxPossiblePersonHours = f.MaxCapacity * m.OperatingHours
	if m.MaxPossiblePersonHours > 0 {
		m.AvgUtilizationPct = float64(m.TotalPersonHours) / float64(m.MaxPossiblePersonHours) * 100
		m.IdleCapacityPct = float64(m.MaxPossiblePersonHours-m.TotalPersonHours) / float64(m.MaxPossiblePersonHours) * 100
	}
	if f.MaxCapacity > 0 {
		m.PeakUtilizationPct = float64(m.PeakUsage) / float64(f.MaxCapacity) * 100
	}

	idleBelow := float64(f.MaxCapacity) * idleThresholdPct
	crowdedAbove := float64(f.MaxCapacity) * overcrowdedThresholdPct
	for _, u := range f.HourlyUsage {
		if float64(u) < idleBelow {
			m.IdleHours++
		}
		if float64(u) > crowdedAbove {
			m.OvercrowdedHours++
		}
	}

	m.DailyOperatingCost = f.OperatingCostPerHour * float64(m.OperatingHours)
	if m.TotalPersonHours > 0 {
		m.CostPerPersonHour = m.DailyOperatingCost / float64(m.TotalPersonHours)
	}
	return m
}

// Aggregate derives the person-hour-weighted metrics for a collection.
func Aggregate(facilities []models.Facility) AggregateMetrics {
	var agg AggregateMetrics
	for _, f := range facilities {
		m := DeriveFacilityMetrics(f)
		agg.TotalPersonHours += m.TotalPersonHours
		agg.MaxPossiblePersonHours += m.MaxPossiblePersonHours
		agg.IdleHours += m.IdleHours
		agg.OvercrowdedHours += m.OvercrowdedHours
		agg.DailyOperatingCost += m.DailyOperatingCost
	}
	if agg.MaxPossiblePersonHours > 0 {
		agg.AvgUtilizationPct = float64(agg.TotalPersonHours) / float64(agg.MaxPossiblePersonHours) * 100
		agg.IdleCapacityPct = float64(agg.MaxPossiblePersonHours-agg.TotalPersonHours) / float64(agg.MaxPossiblePersonHours) * 100
	}
	if agg.TotalPersonHours > 0 {
		agg.CostPerPersonHour = agg.DailyOperatingCost / float64(agg.TotalPersonHours)
	}
	return agg
}

// RedistributeUsage clamps every slot above capPct of capacity down to that
// cap and spreads the clamped excess into the least-used slots first, each
// receiving up to the cap. Excess that finds no room is dropped: the cap
// models capped throughput, so total person-hours never increase.
func RedistributeUsage(f models.Facility, capPct float64) []int {
	limit := int(float64(f.MaxCapacity) * capPct)
	usage := append([]int(nil), f.HourlyUsage...)

	excess := 0
	for i, u := range usage {
		if u > limit {
			excess += u - limit
			usage[i] = limit
		}
	}

	order := make([]int, len(usage))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return usage[order[a]] < usage[order[b]] })

	for _, idx := range order {
		if excess <= 0 {
			break
		}
		room := limit - usage[idx]
		if room <= 0 {
			continue
		}
		add := room
		if excess < add {
			add = excess
		}
		usage[idx] += add
		excess -= add
	}
	return usage
}

// FacilityScenarios returns the fixed seven-scenario list for the facility
// model. Each scenario rebuilds a variant facility set and reports the
// aggregate across it; index 0 is always the unmodified base case.
//
// Closing idle slots shortens the usage sequence and extending hours
// lengthens it, so the utilization denominator itself shifts between
// scenarios. That models literal closure or extension of operating hours
// and is deliberately not normalized away.
func FacilityScenarios(facilities []models.Facility) []FacilityScenario {
	scenarios := make([]FacilityScenario, 0, 7)
	snap := func(name string, fs []models.Facility) {
		scenarios = append(scenarios, FacilityScenario{Name: name, Metrics: Aggregate(fs)})
	}

	snap("Base Case (Current)", facilities)

	for _, capPct := range []float64{0.70, 0.60} {
		variant := make([]models.Facility, 0, len(facilities))
		for _, f := range facilities {
			nf := f.Clone()
			nf.HourlyUsage = RedistributeUsage(f, capPct)
			variant = append(variant, nf)
		}
		snap(fmt.Sprintf("Redistribute (cap %d%%)", int(capPct*100)), variant)
	}

	extended := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		nf := f.Clone()
		if m := DeriveFacilityMetrics(f); m.AvgUtilizationPct > extendUtilizationPct {
			extra := int(float64(m.PeakUsage) * extendedPeakShare)
			nf.HourlyUsage = append(nf.HourlyUsage, extra, extra)
		}
		extended = append(extended, nf)
	}
	snap("Extended Hours (High-Demand)", extended)

	trimmed := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		nf := f.Clone()
		threshold := float64(f.MaxCapacity) * closeSlotThresholdPct
		kept := nf.HourlyUsage[:0]
		for _, u := range nf.HourlyUsage {
			if float64(u) >= threshold {
				kept = append(kept, u)
			}
		}
		if len(kept) == 0 {
			// No qualifying slot: keep the facility's day unchanged.
			nf = f.Clone()
		} else {
			nf.HourlyUsage = kept
		}
		trimmed = append(trimmed, nf)
	}
	snap("Close Idle Slots (<15%)", trimmed)

	resized := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		nf := f.Clone()
		m := DeriveFacilityMetrics(f)
		if m.AvgUtilizationPct < rightSizeUtilizationPct {
			nf.MaxCapacity = int(float64(m.PeakUsage) * rightSizePeakFactor)
		}
		resized = append(resized, nf)
	}
	snap("Capacity Right-Sizing", resized)

	combined := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		m := DeriveFacilityMetrics(f)
		nf := f.Clone()
		nf.HourlyUsage = RedistributeUsage(f, 0.70)
		// Floor, not removal: slots below the 15% threshold are raised to it.
		threshold := float64(f.MaxCapacity) * closeSlotThresholdPct
		for i, u := range nf.HourlyUsage {
			if float64(u) < threshold {
				nf.HourlyUsage[i] = int(threshold)
			}
		}
		if m.AvgUtilizationPct < rightSizeUtilizationPct {
			nf.MaxCapacity = int(float64(m.PeakUsage) * rightSizePeakFactor)
		}
		nf.OperatingCostPerHour = f.OperatingCostPerHour * combinedCostFactor
		combined = append(combined, nf)
	}
	snap("Combined Optimized", combined)

	return scenarios
}

// FindFacilityScenario returns the first scenario whose name contains token.
func FindFacilityScenario(scenarios []FacilityScenario, token string) (FacilityScenario, bool) {
	for _, s := range scenarios {
		if strings.Contains(s.Name, token) {
			return s, true
		}
	}
	return FacilityScenario{}, false
}
