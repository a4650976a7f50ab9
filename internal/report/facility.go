package report

import (
	"fmt"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the facility workbook, in tab order.
var FacilitySheets = []string{
	"Dataset",
	"Utilization Metrics",
	"Optimization Scenarios",
	"Dashboard",
	"Consulting Insights",
	"Project Summary",
}

// BuildFacilityWorkbook renders the six-sheet utilization workbook from the
// facility collection, the aggregate metrics and the ordered scenario list.
// Per-facility metrics are derived once here and shared across sheets.
func BuildFacilityWorkbook(facilities []models.Facility, agg analysis.AggregateMetrics, scenarios []analysis.FacilityScenario, runID string) (*excelize.File, error) {
	if len(facilities) == 0 {
		return nil, fmt.Errorf("facility workbook: no facilities")
	}
	perFacility := make([]analysis.FacilityMetrics, len(facilities))
	for i, fac := range facilities {
		perFacility[i] = analysis.DeriveFacilityMetrics(fac)
	}

	f := excelize.NewFile()
	s, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	builders := []func() error{
		func() error { return facilityDatasetSheet(f, s, facilities, perFacility) },
		func() error { return facilityMetricsSheet(f, s, facilities, perFacility) },
		func() error { return facilityScenarioSheet(f, s, scenarios) },
		func() error { return facilityDashboardSheet(f, s, facilities, perFacility, agg) },
		func() error { return facilityInsightsSheet(f, s, facilities, perFacility, scenarios) },
		func() error { return facilitySummarySheet(f, s, facilities, scenarios) },
	}
	for _, build := range builders {
		if err := build(); err != nil {
			return nil, err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Campus Resource Utilization Analysis",
		Creator:     "campuslens",
		Description: "run " + runID,
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func facilityDatasetSheet(f *excelize.File, s *styleSet, facilities []models.Facility, perFacility []analysis.FacilityMetrics) error {
	w, err := newSheet(f, FacilitySheets[0], colorNavy)
	if err != nil {
		return err
	}
	slots := len(facilities[0].HourlyUsage)
	headers := append([]string{"Facility", "Max Capacity"}, models.HourLabels(slots)...)

	w.title("Campus Facility — Hourly Usage Data", len(headers), s.title)
	w.headerRow(3, headers, s.header)

	for i, fac := range facilities {
		row := 4 + i
		w.set(1, row, fac.Name)
		w.set(2, row, fac.MaxCapacity)
		for j, usage := range fac.HourlyUsage {
			w.set(3+j, row, usage)
		}
	}
	endRow := 3 + len(facilities)
	w.altRows(4, endRow, len(headers), s)

	// Colour-code hot slots after banding: gold above 50% of capacity,
	// red above 85%.
	for i, fac := range facilities {
		if fac.MaxCapacity == 0 {
			continue
		}
		row := 4 + i
		for j, usage := range fac.HourlyUsage {
			pct := float64(usage) / float64(fac.MaxCapacity)
			switch {
			case pct > 0.85:
				w.style(3+j, row, 3+j, row, s.usageHigh)
			case pct > 0.50:
				w.style(3+j, row, 3+j, row, s.usageWarm)
			}
		}
	}
	w.fitColumns(24)

	costStart := endRow + 3
	w.setStyled(1, costStart, "Operating Costs per Facility", s.section)
	costHeaders := []string{"Facility", "Cost / Hour (₹)", "Daily Hours", "Daily Cost (₹)", "Cost / Person-Hr (₹)"}
	w.headerRow(costStart+1, costHeaders, s.header)
	for i, fac := range facilities {
		row := costStart + 2 + i
		m := perFacility[i]
		w.set(1, row, fac.Name)
		w.set(2, row, fac.OperatingCostPerHour)
		w.set(3, row, m.OperatingHours)
		w.set(4, row, m.DailyOperatingCost)
		w.set(5, row, m.CostPerPersonHour)
	}
	costEnd := costStart + 1 + len(facilities)
	w.altRows(costStart+2, costEnd, len(costHeaders), s)
	for _, col := range []int{2, 4, 5} {
		w.numCol(col, costStart+2, costEnd, s.currency, s.currencyAlt)
	}
	return w.err
}

func facilityMetricsSheet(f *excelize.File, s *styleSet, facilities []models.Facility, perFacility []analysis.FacilityMetrics) error {
	w, err := newSheet(f, FacilitySheets[1], colorDarkTeal)
	if err != nil {
		return err
	}
	headers := []string{
		"Facility", "Max Capacity", "Peak Usage", "Peak Util %", "Avg Util %",
		"Idle Hours (<20%)", "Overcrowded Hrs (>85%)", "Idle Capacity %",
	}
	w.title("Resource Utilization Metrics", len(headers), s.title)
	w.headerRow(3, headers, s.header)

	for i, fac := range facilities {
		row := 4 + i
		m := perFacility[i]
		w.set(1, row, fac.Name)
		w.set(2, row, fac.MaxCapacity)
		w.set(3, row, m.PeakUsage)
		w.set(4, row, m.PeakUtilizationPct)
		w.set(5, row, m.AvgUtilizationPct)
		w.set(6, row, m.IdleHours)
		w.set(7, row, m.OvercrowdedHours)
		w.set(8, row, m.IdleCapacityPct)
	}
	endRow := 3 + len(facilities)
	w.altRows(4, endRow, len(headers), s)
	for _, col := range []int{4, 5, 8} {
		w.numCol(col, 4, endRow, s.percent, s.percentAlt)
	}
	w.fitColumns(30)

	cats := areaRef(w.sheet, 1, 4, 1, endRow)
	w.addChart(cellRef(1, endRow+3), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$E$3", w.sheet),
			Categories: cats,
			Values:     areaRef(w.sheet, 5, 4, 5, endRow),
		}},
		Title:      chartTitle("Average Utilization % by Facility"),
		YAxis:      excelize.ChartAxis{Title: chartTitle("Utilization %")},
		Dimension:  excelize.ChartDimension{Width: 840, Height: 480},
		Legend:     excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	w.addChart(cellRef(1, endRow+20), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$D$3", w.sheet),
				Categories: cats,
				Values:     areaRef(w.sheet, 4, 4, 4, endRow),
			},
			{
				Name:       fmt.Sprintf("'%s'!$E$3", w.sheet),
				Categories: cats,
				Values:     areaRef(w.sheet, 5, 4, 5, endRow),
			},
		},
		Title:     chartTitle("Peak vs Average Utilization %"),
		YAxis:     excelize.ChartAxis{Title: chartTitle("Utilization %")},
		Dimension: excelize.ChartDimension{Width: 840, Height: 480},
		Legend:    excelize.ChartLegend{Position: "bottom"},
	})
	return w.err
}

func facilityScenarioSheet(f *excelize.File, s *styleSet, scenarios []analysis.FacilityScenario) error {
	w, err := newSheet(f, FacilitySheets[2], colorTeal)
	if err != nil {
		return err
	}
	cols := []string{
		"Scenario", "Avg Utilization %", "Total Person-Hours",
		"Idle Hours (total)", "Overcrowded Hours", "Daily Op. Cost (₹)", "Cost / Person-Hr (₹)",
	}
	w.title("Optimization Scenario Analysis", len(cols), s.title)
	w.headerRow(3, cols, s.header)

	for i, sc := range scenarios {
		row := 4 + i
		w.set(1, row, sc.Name)
		w.set(2, row, sc.Metrics.AvgUtilizationPct)
		w.set(3, row, sc.Metrics.TotalPersonHours)
		w.set(4, row, sc.Metrics.IdleHours)
		w.set(5, row, sc.Metrics.OvercrowdedHours)
		w.set(6, row, sc.Metrics.DailyOperatingCost)
		w.set(7, row, sc.Metrics.CostPerPersonHour)
	}
	endRow := 3 + len(scenarios)
	w.altRows(4, endRow, len(cols), s)
	w.numCol(2, 4, endRow, s.percent, s.percentAlt)
	w.numCol(6, 4, endRow, s.currency, s.currencyAlt)
	w.numCol(7, 4, endRow, s.currency, s.currencyAlt)
	w.fitColumns(40)

	cats := areaRef(w.sheet, 1, 4, 1, endRow)
	w.addChart(cellRef(1, endRow+3), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$3", w.sheet),
			Categories: cats,
			Values:     areaRef(w.sheet, 2, 4, 2, endRow),
		}},
		Title:      chartTitle("Average Utilization % by Scenario"),
		YAxis:      excelize.ChartAxis{Title: chartTitle("Utilization %")},
		Dimension:  excelize.ChartDimension{Width: 980, Height: 560},
		Legend:     excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	w.addChart(cellRef(1, endRow+20), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$G$3", w.sheet),
			Categories: cats,
			Values:     areaRef(w.sheet, 7, 4, 7, endRow),
		}},
		Title:      chartTitle("Cost per Person-Hour (₹) by Scenario"),
		YAxis:      excelize.ChartAxis{Title: chartTitle("₹ / Person-Hr")},
		Dimension:  excelize.ChartDimension{Width: 980, Height: 560},
		Legend:     excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	return w.err
}

func facilityDashboardSheet(f *excelize.File, s *styleSet, facilities []models.Facility, perFacility []analysis.FacilityMetrics, agg analysis.AggregateMetrics) error {
	w, err := newSheet(f, FacilitySheets[3], colorGold)
	if err != nil {
		return err
	}
	w.title("Executive Dashboard", 6, s.title)

	totalCapacity := 0
	mostUtilised, leastUtilised := 0, 0
	for i, fac := range facilities {
		totalCapacity += fac.MaxCapacity
		if perFacility[i].AvgUtilizationPct > perFacility[mostUtilised].AvgUtilizationPct {
			mostUtilised = i
		}
		if perFacility[i].AvgUtilizationPct < perFacility[leastUtilised].AvgUtilizationPct {
			leastUtilised = i
		}
	}

	kpis := []struct {
		label string
		value interface{}
		money bool
	}{
		{"Avg Utilization", fmt.Sprintf("%.1f%%", agg.AvgUtilizationPct), false},
		{"Total Capacity", totalCapacity, false},
		{"Most Utilised", facilities[mostUtilised].Name, false},
		{"Least Utilised", facilities[leastUtilised].Name, false},
		{"Daily Op. Cost", agg.DailyOperatingCost, true},
		{"Total Idle Hours", agg.IdleHours, false},
	}
	for i, kpi := range kpis {
		col := i + 1
		w.setStyled(col, 3, kpi.label, s.kpiLabel)
		w.set(col, 4, kpi.value)
		if kpi.money {
			w.style(col, 4, col, 4, s.totalCurrency)
		} else {
			w.style(col, 4, col, 4, s.kpiValue)
		}
		w.colWidth(col, 22)
	}

	// Capacity distribution feeding the pie chart.
	w.headerRow(7, []string{"Facility", "Capacity"}, s.header)
	for i, fac := range facilities {
		row := 8 + i
		w.set(1, row, fac.Name)
		w.set(2, row, fac.MaxCapacity)
	}
	w.addChart("D7", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$7", w.sheet),
			Categories: areaRef(w.sheet, 1, 8, 1, 7+len(facilities)),
			Values:     areaRef(w.sheet, 2, 8, 2, 7+len(facilities)),
		}},
		Title:      chartTitle("Capacity Distribution"),
		Dimension:  excelize.ChartDimension{Width: 600, Height: 420},
		VaryColors: boolPtr(true),
		PlotArea:   excelize.ChartPlotArea{ShowPercent: true, ShowCatName: true},
	})

	// Person-hours by facility below the capacity table.
	phStart := 8 + len(facilities) + 2
	w.headerRow(phStart, []string{"Facility", "Person-Hours"}, s.header)
	for i, fac := range facilities {
		row := phStart + 1 + i
		w.set(1, row, fac.Name)
		w.set(2, row, perFacility[i].TotalPersonHours)
	}
	w.addChart(cellRef(4, phStart), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$%d", w.sheet, phStart),
			Categories: areaRef(w.sheet, 1, phStart+1, 1, phStart+len(facilities)),
			Values:     areaRef(w.sheet, 2, phStart+1, 2, phStart+len(facilities)),
		}},
		Title:      chartTitle("Daily Person-Hours by Facility"),
		YAxis:      excelize.ChartAxis{Title: chartTitle("Person-Hours")},
		Dimension:  excelize.ChartDimension{Width: 600, Height: 420},
		Legend:     excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	return w.err
}

func facilityInsightsSheet(f *excelize.File, s *styleSet, facilities []models.Facility, perFacility []analysis.FacilityMetrics, scenarios []analysis.FacilityScenario) error {
	w, err := newSheet(f, FacilitySheets[4], colorRed)
	if err != nil {
		return err
	}
	w.title("Consulting Insights & Recommendations", 3, s.title)

	base := scenarios[0].Metrics
	combined, _ := analysis.FindFacilityScenario(scenarios, analysis.CombinedScenarioToken)
	utilImprovement := combined.Metrics.AvgUtilizationPct - base.AvgUtilizationPct
	costImprovement := base.CostPerPersonHour - combined.Metrics.CostPerPersonHour
	idleReduction := base.IdleHours - combined.Metrics.IdleHours
	crowdedReduction := base.OvercrowdedHours - combined.Metrics.OvercrowdedHours

	mostIdle, mostCrowded, leastUtilised := 0, 0, 0
	for i := range facilities {
		if perFacility[i].IdleHours > perFacility[mostIdle].IdleHours {
			mostIdle = i
		}
		if perFacility[i].OvercrowdedHours > perFacility[mostCrowded].OvercrowdedHours {
			mostCrowded = i
		}
		if perFacility[i].AvgUtilizationPct < perFacility[leastUtilised].AvgUtilizationPct {
			leastUtilised = i
		}
	}
	worst := perFacility[leastUtilised]
	avgUsage := 0
	if worst.OperatingHours > 0 {
		avgUsage = worst.TotalPersonHours / worst.OperatingHours
	}

	row := 3
	row = w.bulletSection(row, "1. KEY INEFFICIENCIES IDENTIFIED", []string{
		fmt.Sprintf("%s utilisation at only %.1f%% — massive capacity wastage (%d seats, avg usage ~%d persons/hr).",
			facilities[leastUtilised].Name, worst.AvgUtilizationPct, facilities[leastUtilised].MaxCapacity, avgUsage),
		fmt.Sprintf("%s has %d overcrowded hours/day (>85%% capacity), causing resource contention.",
			facilities[mostCrowded].Name, perFacility[mostCrowded].OvercrowdedHours),
		fmt.Sprintf("Total %d idle hours across all facilities daily — zero productive output during these slots.", base.IdleHours),
		fmt.Sprintf("%s alone contributes %d of those idle hours; usage is heavily peak-biased with off-peak dead zones.",
			facilities[mostIdle].Name, perFacility[mostIdle].IdleHours),
		"Facilities serving overlapping purposes mirror each other's timetables, duplicating idle periods.",
	}, s)
	row = w.bulletSection(row, "2. ROOT CAUSE ANALYSIS", []string{
		"Event-driven spaces are booked ad-hoc with no structured scheduling, leaving long idle stretches.",
		"Peak-hour facilities see morning and evening spikes with a midday dead zone and no staggered slots.",
		"Timetable-driven rooms copy each other's schedules instead of complementary scheduling.",
		"Demand peaks only during exam season in study spaces; off-season capacity goes unreviewed.",
		"No centralised booking or utilisation tracking system — decisions made without data.",
	}, s)
	row = w.bulletSection(row, "3. RECOMMENDATIONS", []string{
		"QUICK WIN — Implement centralised facility booking app with real-time occupancy display.",
		"Stagger schedules of duplicate-purpose rooms to eliminate overlapping idle periods.",
		fmt.Sprintf("Convert %s to multi-use space during idle hours (study hall, presentations, club activities).",
			facilities[leastUtilised].Name),
		"Introduce staggered peak slots tied to class timetables to flatten peak demand.",
		"Deploy IoT occupancy sensors for real-time data collection and dynamic scheduling.",
		"Close facilities during proven idle slots to reduce operating costs by ~15-20%.",
	}, s)
	w.bulletSection(row, "4. ESTIMATED EFFICIENCY IMPROVEMENT", []string{
		fmt.Sprintf("Base Case Utilization:     %8.2f%%", base.AvgUtilizationPct),
		fmt.Sprintf("Optimised Utilization:     %8.2f%%", combined.Metrics.AvgUtilizationPct),
		fmt.Sprintf("Utilization Uplift:        %8.2f pp", utilImprovement),
		fmt.Sprintf("Cost / Person-Hr Saved:    ₹%7.2f", costImprovement),
		fmt.Sprintf("Idle Hours Eliminated:     %8d hrs/day", idleReduction),
		fmt.Sprintf("Overcrowded Hrs Eliminated:%4d hrs/day", crowdedReduction),
	}, s)

	w.colWidth(1, 100)
	return w.err
}

func facilitySummarySheet(f *excelize.File, s *styleSet, facilities []models.Facility, scenarios []analysis.FacilityScenario) error {
	w, err := newSheet(f, FacilitySheets[5], colorGreen)
	if err != nil {
		return err
	}
	w.title("Project Summary", 2, s.title)

	base := scenarios[0].Metrics
	combined, _ := analysis.FindFacilityScenario(scenarios, analysis.CombinedScenarioToken)
	utilImprovement := combined.Metrics.AvgUtilizationPct - base.AvgUtilizationPct
	n := len(facilities)
	slots := len(facilities[0].HourlyUsage)

	row := 3
	row = w.textSection(row, "PROJECT TITLE", []string{
		"Campus Resource Utilization Analysis",
	}, s)
	row = w.textSection(row, "OBJECTIVE", []string{
		fmt.Sprintf("Conducted a consulting-grade utilization analysis of %d campus facilities at", n),
		"an Indian engineering college, quantifying inefficiencies and modeling",
		"optimization scenarios to improve resource allocation and reduce costs.",
	}, s)
	row = w.textSection(row, "METHODOLOGY", []string{
		fmt.Sprintf("1. Built a granular hourly usage dataset across %d facilities (%d time slots each).", n, slots),
		"2. Computed utilization KPIs: peak, average, idle capacity, overcrowding metrics.",
		fmt.Sprintf("3. Ran %d optimization scenarios across redistribution, scheduling, and right-sizing levers.", len(scenarios)),
		"4. Identified root causes and quantified financial and operational impact.",
	}, s)
	w.textSection(row, "KEY IMPACT", []string{
		fmt.Sprintf("• Identified %d daily idle hours across %d facilities — zero productive output.", base.IdleHours, n),
		fmt.Sprintf("• Demonstrated path to improve utilization from %.1f%% to %.1f%% (+%.1fpp).",
			base.AvgUtilizationPct, combined.Metrics.AvgUtilizationPct, utilImprovement),
		fmt.Sprintf("• Reduced cost per person-hour from ₹%.2f to ₹%.2f.",
			base.CostPerPersonHour, combined.Metrics.CostPerPersonHour),
		"• Delivered executive dashboard and consulting-style insights deck.",
	}, s)

	w.colWidth(1, 80)
	return w.err
}
