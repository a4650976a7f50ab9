// Package console renders run summaries for the terminal: a P&L block and
// scenario table for the mess model, and a utilization table for the
// facility model. All output goes through an io.Writer so tests can capture
// it.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/format"
	"github.com/campuslens/campuslens/internal/models"
)

var (
	navy  = lipgloss.Color("#1B2A4A")
	teal  = lipgloss.Color("#2EC4B6")
	gold  = lipgloss.Color("#D4A853")
	red   = lipgloss.Color("#E74C3C")
	green = lipgloss.Color("#27AE60")
	grey  = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(teal)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(grey)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold)

	ruleStyle = lipgloss.NewStyle().
			Foreground(grey)

	profitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(green)

	lossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(red)

	savedStyle = lipgloss.NewStyle().
			Foreground(navy).
			Bold(true)
)

func banner(w io.Writer, title, subtitle string) {
	rule := ruleStyle.Render(strings.Repeat("=", 60))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  "+titleStyle.Render(title))
	fmt.Fprintln(w, "  "+subtitleStyle.Render(subtitle))
	fmt.Fprintln(w, rule)
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("─", n)))
}

// MessSummary prints the base-case P&L block followed by the scenario table.
func MessSummary(w io.Writer, m analysis.MessMetrics, scenarios []analysis.MessScenario) {
	banner(w, "College Mess Profitability Optimization Model", "Consulting-Style Financial Analysis")

	fmt.Fprintln(w)
	rule(w, 45)
	fmt.Fprintf(w, "  Monthly Revenue:       %s\n", pad(format.Money(m.TotalRevenue), 13))
	fmt.Fprintf(w, "  Total Variable Costs:  %s\n", pad(format.Money(m.TotalVariableCosts), 13))
	fmt.Fprintf(w, "  Total Fixed Costs:     %s\n", pad(format.Money(m.TotalFixedCosts), 13))
	fmt.Fprintf(w, "  Total Cost:            %s\n", pad(format.Money(m.TotalCost), 13))
	fmt.Fprintf(w, "  Net Profit:            %s\n", plMoney(m.Profit, 13))
	fmt.Fprintf(w, "  Profit Margin:         %s\n", pad(format.Pct(m.ProfitMarginPct), 13))
	rule(w, 45)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Optimization Scenarios:"))
	fmt.Fprintf(w, "  %-33s %14s  %8s\n", "Scenario", "Profit", "Margin")
	rule(w, 60)
	for _, sc := range scenarios {
		fmt.Fprintf(w, "  %-33s %s  %s\n",
			sc.Name,
			pad(format.Money(sc.Metrics.Profit), 14),
			pad(format.Pct(sc.Metrics.ProfitMarginPct), 8))
	}
	fmt.Fprintln(w)
}

// FacilitySummary prints the per-facility utilization table, the aggregate
// block and the scenario table.
func FacilitySummary(w io.Writer, facilities []models.Facility, agg analysis.AggregateMetrics, scenarios []analysis.FacilityScenario) {
	banner(w, "Campus Resource Utilization Analysis", "Consulting-Style Analytics Project")

	fmt.Fprintln(w)
	rule(w, 66)
	fmt.Fprintf(w, "  %-20s %8s  %9s  %10s  %8s\n", "Facility", "Capacity", "Avg Util", "Peak Util", "Idle Hrs")
	rule(w, 66)
	for _, fac := range facilities {
		m := analysis.DeriveFacilityMetrics(fac)
		fmt.Fprintf(w, "  %-20s %8d  %8.1f%%  %9.1f%%  %8d\n",
			fac.Name, fac.MaxCapacity, m.AvgUtilizationPct, m.PeakUtilizationPct, m.IdleHours)
	}
	rule(w, 66)
	fmt.Fprintf(w, "  Overall Avg Utilization:  %.1f%%\n", agg.AvgUtilizationPct)
	fmt.Fprintf(w, "  Total Daily Person-Hours: %s\n", format.Int(agg.TotalPersonHours))
	fmt.Fprintf(w, "  Total Daily Op. Cost:     %s\n", format.Money(agg.DailyOperatingCost))
	rule(w, 66)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Optimization Scenarios:"))
	fmt.Fprintf(w, "  %-30s %8s  %12s  %10s\n", "Scenario", "Util %", "Person-Hrs", "Cost/PH")
	rule(w, 67)
	for _, sc := range scenarios {
		fmt.Fprintf(w, "  %-30s %7.2f%%  %12s  ₹%8.2f\n",
			sc.Name, sc.Metrics.AvgUtilizationPct,
			format.Int(sc.Metrics.TotalPersonHours), sc.Metrics.CostPerPersonHour)
	}
	fmt.Fprintln(w)
}

// Saved reports where a finished artifact landed.
func Saved(w io.Writer, what, path string) {
	fmt.Fprintf(w, "%s  %s → %s\n", profitStyle.Render("✅"), savedStyle.Render(what), path)
}

// pad right-aligns s in a field of width n. Rupee and percent strings carry
// multi-byte runes, so byte-width padding via %*s would come out short.
func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return strings.Repeat(" ", n-l) + s
	}
	return s
}

func plMoney(v float64, n int) string {
	s := pad(format.Money(v), n)
	if v < 0 {
		return lossStyle.Render(s)
	}
	return profitStyle.Render(s)
}
