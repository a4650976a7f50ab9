package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslens/campuslens/internal/models"
	"github.com/campuslens/campuslens/internal/report"
)

type recordingUploader struct {
	keys []string
}

func (r *recordingUploader) Upload(_ context.Context, _, key string) error {
	r.keys = append(r.keys, key)
	return nil
}

func testConfig(t *testing.T) *models.Config {
	t.Helper()
	return &models.Config{
		Mess: models.MessAssumptions{
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
		},
		Facilities:     models.DefaultFacilities(),
		OperatingSlots: 18,
		OutputFolder:   t.TempDir(),
	}
}

func newTestPipeline(cfg *models.Config) (*Pipeline, *bytes.Buffer) {
	var out bytes.Buffer
	p := New(cfg, zap.NewNop())
	p.Out = &out
	p.Progress = false
	return p, &out
}

func TestRunProducesBothWorkbooks(t *testing.T) {
	cfg := testConfig(t)
	p, out := newTestPipeline(cfg)

	require.NoError(t, p.Run(context.Background()))

	for _, name := range []string{report.MessWorkbookFile, report.FacilityWorkbookFile} {
		_, err := os.Stat(filepath.Join(cfg.OutputFolder, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out.String(), "College Mess Profitability Optimization Model")
	assert.Contains(t, out.String(), "Campus Resource Utilization Analysis")
}

func TestRunWithCSVExport(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExportFormat = "csv"
	p, _ := newTestPipeline(cfg)

	require.NoError(t, p.Run(context.Background()))

	for _, name := range []string{"mess_scenarios.csv", "facility_scenarios.csv"} {
		_, err := os.Stat(filepath.Join(cfg.OutputFolder, name))
		assert.NoError(t, err, name)
	}
}

func TestRunUploadsArtifacts(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExportFormat = "csv"
	cfg.CloudStorage = models.CloudStorage{Provider: "s3", BucketName: "reports", Region: "ap-south-1"}
	rec := &recordingUploader{}
	p, _ := newTestPipeline(cfg)
	p.Uploader = rec

	require.NoError(t, p.Run(context.Background()))

	require.Len(t, rec.keys, 4)
	assert.Contains(t, rec.keys[0], "reports/"+p.RunID+"/")
	assert.Contains(t, rec.keys[0], report.MessWorkbookFile)
}

func TestRunRejectsUnknownProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.CloudStorage = models.CloudStorage{Provider: "gcs", BucketName: "reports"}
	p, _ := newTestPipeline(cfg)

	err := p.RunMess(context.Background())
	assert.ErrorContains(t, err, "unsupported cloud storage provider")
}
