// Package export writes the scenario tables to machine-readable files, as
// CSV for spreadsheet pipelines or Parquet for analytics stores.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/campuslens/campuslens/internal/analysis"
)

// Format selects the scenario export file format.
type Format string

const (
	FormatNone    Format = ""
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ParseFormat validates a format flag value. The empty string means no
// export.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNone, FormatCSV, FormatParquet:
		return Format(s), nil
	default:
		return FormatNone, fmt.Errorf("unsupported export format %q (want csv or parquet)", s)
	}
}

// FileName appends the format's extension to a base name.
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

type messScenarioRow struct {
	Scenario        string  `parquet:"name=scenario, type=BYTE_ARRAY, convertedtype=UTF8"`
	Revenue         float64 `parquet:"name=revenue, type=DOUBLE"`
	VariableCosts   float64 `parquet:"name=variable_costs, type=DOUBLE"`
	FixedCosts      float64 `parquet:"name=fixed_costs, type=DOUBLE"`
	TotalCost       float64 `parquet:"name=total_cost, type=DOUBLE"`
	Profit          float64 `parquet:"name=profit, type=DOUBLE"`
	ProfitMarginPct float64 `parquet:"name=profit_margin_pct, type=DOUBLE"`
}

type facilityScenarioRow struct {
	Scenario           string  `parquet:"name=scenario, type=BYTE_ARRAY, convertedtype=UTF8"`
	AvgUtilizationPct  float64 `parquet:"name=avg_utilization_pct, type=DOUBLE"`
	TotalPersonHours   int64   `parquet:"name=total_person_hours, type=INT64"`
	IdleHours          int64   `parquet:"name=idle_hours, type=INT64"`
	OvercrowdedHours   int64   `parquet:"name=overcrowded_hours, type=INT64"`
	DailyOperatingCost float64 `parquet:"name=daily_operating_cost, type=DOUBLE"`
	CostPerPersonHour  float64 `parquet:"name=cost_per_person_hour, type=DOUBLE"`
}

// MessScenarios writes the mess scenario table to path in the given format.
func MessScenarios(path string, format Format, scenarios []analysis.MessScenario) error {
	rows := make([]messScenarioRow, len(scenarios))
	for i, sc := range scenarios {
		rows[i] = messScenarioRow{
			Scenario:        sc.Name,
			Revenue:         sc.Metrics.TotalRevenue,
			VariableCosts:   sc.Metrics.TotalVariableCosts,
			FixedCosts:      sc.Metrics.TotalFixedCosts,
			TotalCost:       sc.Metrics.TotalCost,
			Profit:          sc.Metrics.Profit,
			ProfitMarginPct: sc.Metrics.ProfitMarginPct,
		}
	}

	switch format {
	case FormatCSV:
		header := []string{"scenario", "revenue", "variable_costs", "fixed_costs", "total_cost", "profit", "profit_margin_pct"}
		return writeCSV(path, header, len(rows), func(i int) []string {
			r := rows[i]
			return []string{
				r.Scenario,
				money(r.Revenue), money(r.VariableCosts), money(r.FixedCosts),
				money(r.TotalCost), money(r.Profit),
				strconv.FormatFloat(r.ProfitMarginPct, 'f', 2, 64),
			}
		})
	case FormatParquet:
		return writeParquet(path, new(messScenarioRow), len(rows), func(i int) interface{} { return rows[i] })
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// FacilityScenarios writes the facility scenario table to path in the given
// format.
func FacilityScenarios(path string, format Format, scenarios []analysis.FacilityScenario) error {
	rows := make([]facilityScenarioRow, len(scenarios))
	for i, sc := range scenarios {
		rows[i] = facilityScenarioRow{
			Scenario:           sc.Name,
			AvgUtilizationPct:  sc.Metrics.AvgUtilizationPct,
			TotalPersonHours:   int64(sc.Metrics.TotalPersonHours),
			IdleHours:          int64(sc.Metrics.IdleHours),
			OvercrowdedHours:   int64(sc.Metrics.OvercrowdedHours),
			DailyOperatingCost: sc.Metrics.DailyOperatingCost,
			CostPerPersonHour:  sc.Metrics.CostPerPersonHour,
		}
	}

	switch format {
	case FormatCSV:
		header := []string{"scenario", "avg_utilization_pct", "total_person_hours", "idle_hours", "overcrowded_hours", "daily_operating_cost", "cost_per_person_hour"}
		return writeCSV(path, header, len(rows), func(i int) []string {
			r := rows[i]
			return []string{
				r.Scenario,
				strconv.FormatFloat(r.AvgUtilizationPct, 'f', 2, 64),
				strconv.FormatInt(r.TotalPersonHours, 10),
				strconv.FormatInt(r.IdleHours, 10),
				strconv.FormatInt(r.OvercrowdedHours, 10),
				money(r.DailyOperatingCost),
				strconv.FormatFloat(r.CostPerPersonHour, 'f', 2, 64),
			}
		})
	case FormatParquet:
		return writeParquet(path, new(facilityScenarioRow), len(rows), func(i int) interface{} { return rows[i] })
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeParquet(path string, schema interface{}, n int, row func(int) interface{}) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create local file writer: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := pw.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
