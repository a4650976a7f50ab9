package report

import (
	"fmt"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/format"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the mess workbook, in tab order.
var MessSheets = []string{
	"Dataset",
	"Financial Model",
	"Optimization Scenarios",
	"Dashboard",
	"Consulting Insights",
	"Project Summary",
}

// BuildMessWorkbook renders the six-sheet mess profitability workbook from
// the base assumptions, their derived metrics and the ordered scenario list.
func BuildMessWorkbook(a models.MessAssumptions, m analysis.MessMetrics, scenarios []analysis.MessScenario, runID string) (*excelize.File, error) {
	f := excelize.NewFile()
	s, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	builders := []func(*excelize.File, *styleSet) error{
		func(f *excelize.File, s *styleSet) error { return messDatasetSheet(f, s, a) },
		func(f *excelize.File, s *styleSet) error { return messFinancialSheet(f, s, a, m) },
		func(f *excelize.File, s *styleSet) error { return messScenarioSheet(f, s, scenarios) },
		func(f *excelize.File, s *styleSet) error { return messDashboardSheet(f, s, a, m) },
		func(f *excelize.File, s *styleSet) error { return messInsightsSheet(f, s, a, m, scenarios) },
		func(f *excelize.File, s *styleSet) error { return messSummarySheet(f, s, a, m, scenarios) },
	}
	for _, build := range builders {
		if err := build(f, s); err != nil {
			return nil, err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "College Mess Profitability Optimization Model",
		Creator:     "campuslens",
		Description: "run " + runID,
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func messDatasetSheet(f *excelize.File, s *styleSet, a models.MessAssumptions) error {
	w, err := newSheet(f, MessSheets[0], colorNavy)
	if err != nil {
		return err
	}
	w.title("College Mess — Input Assumptions", 3, s.title)
	w.headerRow(3, []string{"Category", "Parameter", "Value"}, s.header)

	rows := []struct {
		category, parameter string
		value               interface{}
	}{
		{"Student & Pricing", "Total Students Enrolled", a.TotalStudents},
		{"Student & Pricing", "Monthly Mess Fee (₹)", a.MonthlyFeePerStudent},
		{"Student & Pricing", "Days in Month", a.DaysInMonth},
		{"Variable Costs", "Daily Food Cost / Student (₹)", a.DailyFoodCostPerStudent},
		{"Variable Costs", "Food Wastage (%)", a.FoodWastagePct},
		{"Variable Costs", "LPG / Fuel (₹/month)", a.LPGFuelMonthly},
		{"Variable Costs", "Water (₹/month)", a.WaterMonthly},
		{"Variable Costs", "Packaging & Disposables (₹/month)", a.PackagingMonthly},
		{"Fixed Costs", "Staff Salaries (₹/month)", a.StaffSalaries},
		{"Fixed Costs", "Electricity (₹/month)", a.Electricity},
		{"Fixed Costs", "Maintenance (₹/month)", a.Maintenance},
		{"Fixed Costs", "Rent (₹/month)", a.Rent},
		{"Fixed Costs", "Insurance & Misc (₹/month)", a.InsuranceMisc},
	}
	for i, r := range rows {
		w.set(1, 4+i, r.category)
		w.set(2, 4+i, r.parameter)
		w.set(3, 4+i, r.value)
	}
	w.altRows(4, 3+len(rows), 3, s)
	w.fitColumns(40)
	return w.err
}

func messFinancialSheet(f *excelize.File, s *styleSet, a models.MessAssumptions, m analysis.MessMetrics) error {
	w, err := newSheet(f, MessSheets[1], colorDarkTeal)
	if err != nil {
		return err
	}
	w.title("Monthly Profit & Loss Statement", 3, s.title)
	w.headerRow(3, []string{"Line Item", "Amount (₹)", "% of Revenue"}, s.header)

	pct := func(v float64) interface{} {
		if m.TotalRevenue == 0 {
			return nil
		}
		return v / m.TotalRevenue * 100
	}

	type plRow struct {
		item    string
		amount  interface{}
		revPct  interface{}
		section bool
		total   bool
	}
	rows := []plRow{
		{item: "REVENUE", section: true},
		{item: "  Total Students × Monthly Fee", amount: m.TotalRevenue, revPct: pct(m.TotalRevenue)},
		{},
		{item: "VARIABLE COSTS", section: true},
		{item: "  Raw Food Cost (Students × Daily × Days)", amount: m.MonthlyRawFoodCost, revPct: pct(m.MonthlyRawFoodCost)},
		{item: "  Food Wastage Cost", amount: m.MonthlyWastageCost, revPct: pct(m.MonthlyWastageCost)},
		{item: "  LPG / Fuel", amount: a.LPGFuelMonthly, revPct: pct(a.LPGFuelMonthly)},
		{item: "  Water", amount: a.WaterMonthly, revPct: pct(a.WaterMonthly)},
		{item: "  Packaging & Disposables", amount: a.PackagingMonthly, revPct: pct(a.PackagingMonthly)},
		{item: "Total Variable Costs", amount: m.TotalVariableCosts, revPct: pct(m.TotalVariableCosts), total: true},
		{},
		{item: "FIXED COSTS", section: true},
		{item: "  Staff Salaries", amount: a.StaffSalaries, revPct: pct(a.StaffSalaries)},
		{item: "  Electricity", amount: a.Electricity, revPct: pct(a.Electricity)},
		{item: "  Maintenance", amount: a.Maintenance, revPct: pct(a.Maintenance)},
		{item: "  Rent", amount: a.Rent, revPct: pct(a.Rent)},
		{item: "  Insurance & Misc", amount: a.InsuranceMisc, revPct: pct(a.InsuranceMisc)},
		{item: "Total Fixed Costs", amount: m.TotalFixedCosts, revPct: pct(m.TotalFixedCosts), total: true},
		{},
		{item: "TOTAL COST", amount: m.TotalCost, revPct: pct(m.TotalCost), total: true},
		{},
		{item: "NET PROFIT / (LOSS)", amount: m.Profit, revPct: m.ProfitMarginPct, total: true},
		{item: "Profit Margin", amount: fmt.Sprintf("%.2f%%", m.ProfitMarginPct), total: true},
	}

	for i, r := range rows {
		row := 4 + i
		w.set(1, row, r.item)
		if r.amount != nil {
			w.set(2, row, r.amount)
			if _, isText := r.amount.(string); !isText {
				w.style(2, row, 2, row, s.currency)
			}
		}
		if r.revPct != nil {
			w.set(3, row, r.revPct)
			w.style(3, row, 3, row, s.percent)
		}
		if r.section {
			w.style(1, row, 1, row, s.section)
		}
		if r.total {
			w.style(1, row, 1, row, s.totalLabel)
			w.style(3, row, 3, row, s.totalPercent)
			profitStyle := s.totalCurrency
			if r.item == "NET PROFIT / (LOSS)" {
				profitStyle = s.profitPos
				if m.Profit < 0 {
					profitStyle = s.profitNeg
				}
			}
			if _, isText := r.amount.(string); !isText {
				w.style(2, row, 2, row, profitStyle)
			}
		}
	}

	w.colWidth(1, 42)
	w.colWidth(2, 20)
	w.colWidth(3, 16)
	return w.err
}

func messScenarioSheet(f *excelize.File, s *styleSet, scenarios []analysis.MessScenario) error {
	w, err := newSheet(f, MessSheets[2], colorTeal)
	if err != nil {
		return err
	}
	w.title("Optimization Scenario Analysis", 7, s.title)
	cols := []string{"Scenario", "Revenue", "Variable Costs", "Fixed Costs", "Total Cost", "Profit", "Profit Margin %"}
	w.headerRow(3, cols, s.header)

	for i, sc := range scenarios {
		row := 4 + i
		w.set(1, row, sc.Name)
		w.set(2, row, sc.Metrics.TotalRevenue)
		w.set(3, row, sc.Metrics.TotalVariableCosts)
		w.set(4, row, sc.Metrics.TotalFixedCosts)
		w.set(5, row, sc.Metrics.TotalCost)
		w.set(6, row, sc.Metrics.Profit)
		w.set(7, row, sc.Metrics.ProfitMarginPct)
	}
	endRow := 3 + len(scenarios)
	w.altRows(4, endRow, len(cols), s)
	for col := 2; col <= 6; col++ {
		w.numCol(col, 4, endRow, s.currency, s.currencyAlt)
	}
	w.numCol(7, 4, endRow, s.percent, s.percentAlt)
	w.fitColumns(40)

	cats := areaRef(w.sheet, 1, 4, 1, endRow)
	w.addChart(cellRef(1, endRow+3), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$F$3", w.sheet),
			Categories: cats,
			Values:     areaRef(w.sheet, 6, 4, 6, endRow),
		}},
		Title:     chartTitle("Profit by Scenario (₹)"),
		XAxis:     excelize.ChartAxis{Title: chartTitle("Scenario")},
		YAxis:     excelize.ChartAxis{Title: chartTitle("Profit (₹)")},
		Dimension: excelize.ChartDimension{Width: 840, Height: 480},
		Legend:    excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	w.addChart(cellRef(1, endRow+20), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$G$3", w.sheet),
			Categories: cats,
			Values:     areaRef(w.sheet, 7, 4, 7, endRow),
		}},
		Title:     chartTitle("Profit Margin % by Scenario"),
		YAxis:     excelize.ChartAxis{Title: chartTitle("Margin %")},
		Dimension: excelize.ChartDimension{Width: 840, Height: 480},
		Legend:    excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	return w.err
}

func messDashboardSheet(f *excelize.File, s *styleSet, a models.MessAssumptions, m analysis.MessMetrics) error {
	w, err := newSheet(f, MessSheets[3], colorGold)
	if err != nil {
		return err
	}
	w.title("Executive Dashboard", 6, s.title)

	kpis := []struct {
		label string
		value interface{}
		money bool
	}{
		{"Monthly Revenue", m.TotalRevenue, true},
		{"Total Costs", m.TotalCost, true},
		{"Net Profit", m.Profit, true},
		{"Profit Margin", fmt.Sprintf("%.2f%%", m.ProfitMarginPct), false},
		{"Food Wastage Cost", m.MonthlyWastageCost, true},
		{"Break-even Students", analysis.BreakEvenStudents(a), false},
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

	// Cost breakdown feeding the pie chart.
	w.headerRow(7, []string{"Cost Component", "Amount (₹)"}, s.header)
	costItems := []struct {
		name  string
		value float64
	}{
		{"Raw Food", m.MonthlyRawFoodCost},
		{"Food Wastage", m.MonthlyWastageCost},
		{"LPG / Fuel", a.LPGFuelMonthly},
		{"Water", a.WaterMonthly},
		{"Packaging", a.PackagingMonthly},
		{"Staff Salaries", a.StaffSalaries},
		{"Electricity", a.Electricity},
		{"Maintenance", a.Maintenance},
		{"Rent", a.Rent},
		{"Insurance & Misc", a.InsuranceMisc},
	}
	for i, item := range costItems {
		row := 8 + i
		w.set(1, row, item.name)
		w.setStyled(2, row, item.value, s.currency)
	}
	w.addChart("D7", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$7", w.sheet),
			Categories: areaRef(w.sheet, 1, 8, 1, 7+len(costItems)),
			Values:     areaRef(w.sheet, 2, 8, 2, 7+len(costItems)),
		}},
		Title:      chartTitle("Cost Structure Breakdown"),
		Dimension:  excelize.ChartDimension{Width: 600, Height: 420},
		VaryColors: boolPtr(true),
		PlotArea:   excelize.ChartPlotArea{ShowPercent: true, ShowCatName: true},
	})

	// Revenue vs cost vs profit bars.
	w.headerRow(20, []string{"Metric", "Amount (₹)"}, s.header)
	waterfall := []struct {
		name  string
		value float64
	}{
		{"Revenue", m.TotalRevenue},
		{"Variable Costs", m.TotalVariableCosts},
		{"Fixed Costs", m.TotalFixedCosts},
		{"Net Profit", m.Profit},
	}
	for i, item := range waterfall {
		row := 21 + i
		w.set(1, row, item.name)
		w.setStyled(2, row, item.value, s.currency)
	}
	w.addChart("D20", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$20", w.sheet),
			Categories: areaRef(w.sheet, 1, 21, 1, 24),
			Values:     areaRef(w.sheet, 2, 21, 2, 24),
		}},
		Title:      chartTitle("Revenue vs Costs vs Profit"),
		YAxis:      excelize.ChartAxis{Title: chartTitle("Amount (₹)")},
		Dimension:  excelize.ChartDimension{Width: 600, Height: 420},
		Legend:     excelize.ChartLegend{Position: "none"},
		VaryColors: boolPtr(true),
	})
	return w.err
}

func messInsightsSheet(f *excelize.File, s *styleSet, a models.MessAssumptions, m analysis.MessMetrics, scenarios []analysis.MessScenario) error {
	w, err := newSheet(f, MessSheets[4], colorRed)
	if err != nil {
		return err
	}
	w.title("Consulting Insights & Recommendations", 3, s.title)

	base := scenarios[0].Metrics
	combined, _ := analysis.FindMessScenario(scenarios, analysis.CombinedScenarioToken)
	improvement := combined.Metrics.Profit - base.Profit
	energySharePct := 0.0
	if m.TotalRevenue != 0 {
		energySharePct = (a.LPGFuelMonthly + a.Electricity) / m.TotalRevenue * 100
	}

	row := 3
	row = w.bulletSection(row, "1. KEY INEFFICIENCIES IDENTIFIED", []string{
		fmt.Sprintf("Food wastage at %g%% translates to %s/month of avoidable cost.", a.FoodWastagePct, format.Money(m.MonthlyWastageCost)),
		"No dynamic menu planning — fixed menu leads to predictable over-production on low-attendance days.",
		fmt.Sprintf("Energy & fuel costs (LPG + electricity) represent a combined ~%.1f%% of revenue with no efficiency monitoring.", energySharePct),
		"Manual inventory management causes 5-8% over-ordering of perishable goods.",
		fmt.Sprintf("Break-even point at %d students leaves thin safety margin.", analysis.BreakEvenStudents(a)),
	}, s)
	row = w.bulletSection(row, "2. ROOT CAUSE ANALYSIS", []string{
		"Wastage: Absence of attendance-based demand forecasting; batch cooking without portion control.",
		"Energy: Aged kitchen equipment (>5 yrs); no sub-metering for consumption tracking.",
		"Procurement: No vendor benchmarking; reliance on single supplier inflates raw material cost.",
		"Pricing: Mess fee has not been revised in 2+ years despite 8-10% food inflation.",
	}, s)
	row = w.bulletSection(row, "3. RECOMMENDATIONS", []string{
		"QUICK WIN — Implement meal pre-booking app to forecast daily demand (est. 40% wastage reduction).",
		"Negotiate bulk/multi-vendor procurement; target 5-7% raw material savings.",
		"Install sub-metering and switch to energy-efficient equipment; target 5% energy reduction.",
		"Revise mess fee by ₹200/month (4.4% increase, still below market rate of ₹5,000+).",
		"Introduce weekend opt-out system to reduce per-meal variable cost.",
	}, s)
	w.bulletSection(row, "4. ESTIMATED FINANCIAL IMPROVEMENT", []string{
		fmt.Sprintf("Base Case Profit:           %s   (%.2f%% margin)", format.Money(base.Profit), base.ProfitMarginPct),
		fmt.Sprintf("Optimised Scenario Profit:  %s   (%.2f%% margin)", format.Money(combined.Metrics.Profit), combined.Metrics.ProfitMarginPct),
		fmt.Sprintf("Incremental Profit Gain:    %s/month", format.Money(improvement)),
		fmt.Sprintf("Annualised Improvement:     %s/year", format.Money(improvement*12)),
		fmt.Sprintf("Margin Uplift:              %.2f pp", combined.Metrics.ProfitMarginPct-base.ProfitMarginPct),
	}, s)

	w.colWidth(1, 100)
	return w.err
}

func messSummarySheet(f *excelize.File, s *styleSet, a models.MessAssumptions, m analysis.MessMetrics, scenarios []analysis.MessScenario) error {
	w, err := newSheet(f, MessSheets[5], colorGreen)
	if err != nil {
		return err
	}
	w.title("Project Summary", 2, s.title)

	base := scenarios[0].Metrics
	combined, _ := analysis.FindMessScenario(scenarios, analysis.CombinedScenarioToken)
	improvement := combined.Metrics.Profit - base.Profit

	row := 3
	row = w.textSection(row, "PROJECT TITLE", []string{
		"College Mess Profitability Optimization Model",
	}, s)
	row = w.textSection(row, "OBJECTIVE", []string{
		"Developed a consulting-grade financial model to analyze the profitability,",
		"cost structure, and optimization levers of a college hostel mess serving",
		fmt.Sprintf("%d+ students, with actionable recommendations to improve margins.", a.TotalStudents),
	}, s)
	row = w.textSection(row, "METHODOLOGY", []string{
		"1. Built a bottom-up P&L model with granular cost drivers (13 line items).",
		"2. Ran 11 optimization scenarios across 3 levers: wastage reduction,",
		"   operational efficiency, and pricing adjustments.",
		"3. Conducted root-cause analysis of key cost inefficiencies.",
		"4. Quantified financial impact of recommendations using scenario modeling.",
	}, s)
	w.textSection(row, "KEY IMPACT", []string{
		fmt.Sprintf("• Identified %s/month in avoidable food wastage costs.", format.Money(m.MonthlyWastageCost)),
		fmt.Sprintf("• Demonstrated path to improve profit margin from %.1f%% to %.1f%%.", base.ProfitMarginPct, combined.Metrics.ProfitMarginPct),
		fmt.Sprintf("• Quantified %s annualized profit improvement potential.", format.Money(improvement*12)),
		"• Delivered executive dashboard and consulting-style insights deck.",
	}, s)

	w.colWidth(1, 80)
	return w.err
}
