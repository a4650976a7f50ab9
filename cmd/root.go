package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/campuslens/campuslens/internal/export"
	"github.com/campuslens/campuslens/internal/logger"
	"github.com/campuslens/campuslens/internal/models"
	"github.com/campuslens/campuslens/internal/pipeline"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "campuslens",
	Short: "Consulting-style analytics for campus operations",
	Long: `campuslens models the finances and utilization of campus operations:
a bottom-up P&L of the hostel mess with optimization scenarios, and an
hourly utilization analysis of campus facilities. Each run prints a console
summary and writes a formatted Excel workbook with charts and insights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(p *pipeline.Pipeline) error {
			return p.Run(cmd.Context())
		})
	},
}

var messCmd = &cobra.Command{
	Use:   "mess",
	Short: "Run only the mess profitability model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(p *pipeline.Pipeline) error {
			return p.RunMess(cmd.Context())
		})
	},
}

var facilityCmd = &cobra.Command{
	Use:   "facility",
	Short: "Run only the facility utilization model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(p *pipeline.Pipeline) error {
			return p.RunFacility(cmd.Context())
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./campuslens.yaml)")
	rootCmd.PersistentFlags().String("output-dir", ".", "directory for generated workbooks and exports")
	rootCmd.PersistentFlags().String("export", "", "also export scenario tables (csv or parquet)")
	rootCmd.PersistentFlags().String("upload-bucket", "", "S3 bucket to upload finished reports to")
	rootCmd.PersistentFlags().String("upload-region", "ap-south-1", "AWS region of the upload bucket")

	viper.BindPFlag("output_folder", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("export_format", rootCmd.PersistentFlags().Lookup("export"))
	viper.BindPFlag("cloud_storage.bucket_name", rootCmd.PersistentFlags().Lookup("upload-bucket"))
	viper.BindPFlag("cloud_storage.region", rootCmd.PersistentFlags().Lookup("upload-region"))

	rootCmd.AddCommand(messCmd, facilityCmd)
	rootCmd.SilenceUsage = true
}

func initConfig() {
	// .env feeds the AWS credential chain and CAMPUSLENS_* overrides.
	_ = godotenv.Load()
}

func run(f func(*pipeline.Pipeline) error) error {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		log.Error("failed to load config", zap.Error(err))
		return err
	}
	if _, err := export.ParseFormat(cfg.ExportFormat); err != nil {
		log.Error("invalid export flag", zap.Error(err))
		return err
	}

	p := pipeline.New(cfg, log)
	log.Info("starting run",
		zap.String("run_id", p.RunID),
		zap.String("output_folder", cfg.OutputFolder))
	return f(p)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
