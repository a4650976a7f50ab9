// Package pipeline orchestrates one analysis run: derive metrics, build the
// scenario set, print the console summary, render the workbook and hand the
// artifacts to the optional export and upload sinks.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/campuslens/campuslens/internal/analysis"
	"github.com/campuslens/campuslens/internal/console"
	"github.com/campuslens/campuslens/internal/export"
	"github.com/campuslens/campuslens/internal/logger"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/campuslens/campuslens/internal/report"
	"github.com/campuslens/campuslens/internal/uploader"
)

// Pipeline runs the mess and facility models for one configuration.
type Pipeline struct {
	Config *models.Config
	Log    *zap.Logger
	RunID  string

	// Out receives the console summary; defaults to stdout.
	Out io.Writer
	// Uploader overrides the cloud destination; when nil one is built from
	// the config if an upload bucket is set.
	Uploader uploader.Uploader
	// Progress disables the stage progress bar when false.
	Progress bool
}

// New builds a pipeline with a fresh run ID.
func New(cfg *models.Config, log *zap.Logger) *Pipeline {
	return &Pipeline{
		Config:   cfg,
		Log:      logger.Named(log, "pipeline"),
		RunID:    cuid.New(),
		Out:      os.Stdout,
		Progress: true,
	}
}

// Run executes both models.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.RunMess(ctx); err != nil {
		return err
	}
	return p.RunFacility(ctx)
}

// RunMess executes the mess profitability model end to end.
func (p *Pipeline) RunMess(ctx context.Context) error {
	log := logger.Named(p.Log, "mess")
	bar := p.bar(4, "mess model")

	metrics := analysis.DeriveMessMetrics(p.Config.Mess)
	scenarios := analysis.MessScenarios(p.Config.Mess)
	log.Info("derived base metrics",
		zap.Float64("revenue", metrics.TotalRevenue),
		zap.Float64("profit", metrics.Profit),
		zap.Int("scenarios", len(scenarios)))
	step(bar)

	console.MessSummary(p.Out, metrics, scenarios)
	step(bar)

	f, err := report.BuildMessWorkbook(p.Config.Mess, metrics, scenarios, p.RunID)
	if err != nil {
		return fmt.Errorf("failed to build mess workbook: %w", err)
	}
	workbookPath, err := p.saveWorkbook(f, report.MessWorkbookFile)
	if err != nil {
		return err
	}
	console.Saved(p.Out, "Excel workbook saved", workbookPath)
	step(bar)

	artifacts := []string{workbookPath}
	if format := export.Format(p.Config.ExportFormat); format != export.FormatNone {
		exportPath := filepath.Join(p.Config.OutputFolder, format.FileName("mess_scenarios"))
		if err := export.MessScenarios(exportPath, format, scenarios); err != nil {
			return fmt.Errorf("failed to export mess scenarios: %w", err)
		}
		console.Saved(p.Out, "Scenario table saved", exportPath)
		artifacts = append(artifacts, exportPath)
	}
	if err := p.upload(ctx, log, artifacts); err != nil {
		return err
	}
	step(bar)
	return nil
}

// RunFacility executes the facility utilization model end to end.
func (p *Pipeline) RunFacility(ctx context.Context) error {
	log := logger.Named(p.Log, "facility")
	bar := p.bar(4, "facility model")

	agg := analysis.Aggregate(p.Config.Facilities)
	scenarios := analysis.FacilityScenarios(p.Config.Facilities)
	log.Info("derived aggregate metrics",
		zap.Float64("avg_utilization_pct", agg.AvgUtilizationPct),
		zap.Int("total_person_hours", agg.TotalPersonHours),
		zap.Int("scenarios", len(scenarios)))
	step(bar)

	console.FacilitySummary(p.Out, p.Config.Facilities, agg, scenarios)
	step(bar)

	f, err := report.BuildFacilityWorkbook(p.Config.Facilities, agg, scenarios, p.RunID)
	if err != nil {
		return fmt.Errorf("failed to build facility workbook: %w", err)
	}
	workbookPath, err := p.saveWorkbook(f, report.FacilityWorkbookFile)
	if err != nil {
		return err
	}
	console.Saved(p.Out, "Excel workbook saved", workbookPath)
	step(bar)

	artifacts := []string{workbookPath}
	if format := export.Format(p.Config.ExportFormat); format != export.FormatNone {
		exportPath := filepath.Join(p.Config.OutputFolder, format.FileName("facility_scenarios"))
		if err := export.FacilityScenarios(exportPath, format, scenarios); err != nil {
			return fmt.Errorf("failed to export facility scenarios: %w", err)
		}
		console.Saved(p.Out, "Scenario table saved", exportPath)
		artifacts = append(artifacts, exportPath)
	}
	if err := p.upload(ctx, log, artifacts); err != nil {
		return err
	}
	step(bar)
	return nil
}

func (p *Pipeline) saveWorkbook(f *excelize.File, name string) (string, error) {
	if err := os.MkdirAll(p.Config.OutputFolder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}
	path := filepath.Join(p.Config.OutputFolder, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func (p *Pipeline) upload(ctx context.Context, log *zap.Logger, artifacts []string) error {
	up := p.Uploader
	if up == nil {
		cs := p.Config.CloudStorage
		if cs.Provider == "" || cs.BucketName == "" {
			return nil
		}
		if cs.Provider != "s3" {
			return fmt.Errorf("unsupported cloud storage provider %q", cs.Provider)
		}
		s3up, err := uploader.NewS3Uploader(ctx, cs.Region, cs.BucketName)
		if err != nil {
			return err
		}
		up = s3up
	}
	if err := uploader.UploadReports(ctx, up, p.RunID, artifacts); err != nil {
		return err
	}
	log.Info("uploaded artifacts",
		zap.Int("count", len(artifacts)),
		zap.String("bucket", p.Config.CloudStorage.BucketName))
	return nil
}

func (p *Pipeline) bar(steps int, description string) *progressbar.ProgressBar {
	if !p.Progress {
		return nil
	}
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)
}

func step(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}
