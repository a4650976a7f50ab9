package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CloudStorage holds the optional report upload destination.
type CloudStorage struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

// Config is the full runtime configuration: both assumption sets plus output
// options. Every field has a compiled-in default matching the reference
// campus dataset, overridable through a config file, environment variables
// or flags.
type Config struct {
	Mess           MessAssumptions `mapstructure:"mess"`
	Facilities     []Facility      `mapstructure:"facilities"`
	OperatingSlots int             `mapstructure:"operating_slots"`

	OutputFolder string       `mapstructure:"output_folder"`
	ExportFormat string       `mapstructure:"export_format"`
	CloudStorage CloudStorage `mapstructure:"cloud_storage"`
}

func setDefaults() {
	// Mess model defaults: a 650-student hostel mess at 2024-25 price levels.
	viper.SetDefault("mess.total_students", 650)
	viper.SetDefault("mess.monthly_fee_per_student", 4500.0)
	viper.SetDefault("mess.days_in_month", 30)
	viper.SetDefault("mess.daily_food_cost_per_student", 90.0)
	viper.SetDefault("mess.food_wastage_pct", 12.0)
	viper.SetDefault("mess.lpg_fuel_monthly", 55000.0)
	viper.SetDefault("mess.water_monthly", 18000.0)
	viper.SetDefault("mess.packaging_disposables_monthly", 12000.0)
	viper.SetDefault("mess.staff_salaries", 220000.0)
	viper.SetDefault("mess.electricity", 45000.0)
	viper.SetDefault("mess.maintenance", 20000.0)
	viper.SetDefault("mess.rent", 60000.0)
	viper.SetDefault("mess.insurance_misc", 15000.0)

	viper.SetDefault("operating_slots", 18)
	viper.SetDefault("output_folder", ".")
	viper.SetDefault("export_format", "")
	viper.SetDefault("cloud_storage.provider", "s3")
}

// DefaultFacilities returns the built-in campus dataset: seven facilities
// with hourly headcounts across the 6:00-23:00 operating day.
func DefaultFacilities() []Facility {
	return []Facility{
		{
			Name:                 "Gymnasium",
			MaxCapacity:          60,
			HourlyUsage:          []int{8, 25, 35, 15, 10, 12, 18, 22, 30, 45, 50, 38, 28, 15, 10, 8, 20, 35},
			OperatingCostPerHour: 450.0,
		},
		{
			Name:                 "Central Library",
			MaxCapacity:          200,
			HourlyUsage:          []int{15, 30, 60, 90, 120, 140, 150, 165, 170, 180, 175, 160, 130, 100, 80, 60, 45, 25},
			OperatingCostPerHour: 800.0,
		},
		{
			Name:                 "Computer Lab A",
			MaxCapacity:          80,
			HourlyUsage:          []int{5, 10, 55, 70, 75, 72, 68, 65, 60, 55, 50, 45, 35, 25, 15, 10, 8, 5},
			OperatingCostPerHour: 600.0,
		},
		{
			Name:                 "Computer Lab B",
			MaxCapacity:          80,
			HourlyUsage:          []int{0, 5, 40, 60, 65, 70, 72, 68, 55, 40, 30, 25, 20, 15, 10, 5, 3, 0},
			OperatingCostPerHour: 600.0,
		},
		{
			Name:                 "Study Room Block",
			MaxCapacity:          120,
			HourlyUsage:          []int{10, 15, 25, 40, 50, 55, 60, 65, 70, 80, 90, 100, 105, 95, 85, 70, 55, 40},
			OperatingCostPerHour: 350.0,
		},
		{
			Name:                 "Auditorium",
			MaxCapacity:          500,
			HourlyUsage:          []int{0, 0, 50, 100, 350, 200, 80, 50, 30, 20, 15, 10, 50, 100, 300, 150, 50, 0},
			OperatingCostPerHour: 1200.0,
		},
		{
			Name:                 "Sports Complex",
			MaxCapacity:          150,
			HourlyUsage:          []int{20, 40, 15, 10, 8, 12, 15, 20, 25, 35, 50, 65, 80, 100, 120, 130, 110, 70},
			OperatingCostPerHour: 500.0,
		},
	}
}

// LoadConfig initializes and reads the configuration using Viper.
// A missing config file is not an error: the compiled-in defaults describe a
// complete dataset on their own.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("campuslens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("campuslens")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.Facilities) == 0 {
		config.Facilities = DefaultFacilities()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks every assumption set against the model preconditions.
func (c *Config) Validate() error {
	if err := c.Mess.Validate(); err != nil {
		return err
	}
	if c.OperatingSlots <= 0 {
		return fmt.Errorf("%w: operating_slots must be > 0, got %d", ErrInvalidAssumption, c.OperatingSlots)
	}
	for _, f := range c.Facilities {
		if err := f.Validate(c.OperatingSlots); err != nil {
			return err
		}
	}
	return nil
}
