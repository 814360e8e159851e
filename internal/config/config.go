// Package config defines the generator configuration and its loading hooks.
//
// Conventions:
//   - New returns a Config populated with defaults.
//   - Load layers a YAML file and KPIGEN_* environment variables on top.
//   - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"runtime"
	"time"
)

// Generation modes.
const (
	ModeGeneral = "general"
	ModeHotel   = "hotel"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Chain modes for general generation.
const (
	// ChainGlobal drifts every record from the one generated just before it.
	ChainGlobal = "global"
	// ChainSegment keeps one independent chain per segment.
	ChainSegment = "segment"
)

// DateLayout is the accepted date format for start_date and end_date.
const DateLayout = "2006-01-02"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Mode selects the dataset: general or hotel.
	Mode string `koanf:"mode"`

	// Records is the number of general-mode records.
	Records int `koanf:"records"`

	// Segments are drawn uniformly for each general-mode record.
	Segments []string `koanf:"segments"`

	// StartDate and EndDate bound the generated dates (inclusive, YYYY-MM-DD).
	StartDate string `koanf:"start_date"`
	EndDate   string `koanf:"end_date"`

	// OutlierProbability is the per-record chance of one corrupted metric.
	OutlierProbability float64 `koanf:"outlier_probability"`

	// Output is the CSV file path. Existing files are overwritten.
	Output string `koanf:"output"`

	HotelName          string `koanf:"hotel_name"`
	TotalRooms         int    `koanf:"total_rooms"`
	MaxCustomersPerDay int    `koanf:"max_customers_per_day"`

	// Seed makes runs reproducible. 0 seeds from the clock.
	Seed int64 `koanf:"seed"`

	// ChainMode is global or segment.
	ChainMode string `koanf:"chain_mode"`

	// Workers bounds concurrent chains in segment chain mode.
	Workers int `koanf:"workers"`

	// DriftScale multiplies every drift step.
	DriftScale float64 `koanf:"drift_scale"`

	// Progress enables the terminal progress bar.
	Progress bool `koanf:"progress"`

	// MetricsFile, when set, receives a Prometheus textfile snapshot after
	// the run.
	MetricsFile string `koanf:"metrics_file"`

	// Metrics* shape the exported series. MetricsLabels are attached to
	// every series as constant labels.
	MetricsEnabled   bool              `koanf:"metrics_enabled"`
	MetricsNamespace string            `koanf:"metrics_namespace"`
	MetricsSubsystem string            `koanf:"metrics_subsystem"`
	MetricsBuckets   []float64         `koanf:"metrics_buckets"`
	MetricsLabels    map[string]string `koanf:"metrics_labels"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: LogFormatText,
		Mode:      ModeGeneral,
		Records:   2000,
		Segments: []string{
			"Educação", "Hotelaria", "Saúde", "TI", "Varejo",
			"Serviços", "Finanças", "Indústria", "Banco", "Hospital",
		},
		StartDate:          "2020-01-01",
		EndDate:            "2020-12-31",
		OutlierProbability: 0.01,
		Output:             "dados.csv",
		HotelName:          "Hotel Fictício",
		TotalRooms:         100,
		MaxCustomersPerDay: 5,
		Seed:               0,
		ChainMode:          ChainGlobal,
		Workers:            runtime.NumCPU(),
		DriftScale:         1.0,
		Progress:           true,
		MetricsFile:        "",
		MetricsEnabled:     true,
		MetricsNamespace:   "kpigen",
		MetricsSubsystem:   "generator",
	}
}

// Start parses StartDate in UTC.
func (c *Config) Start() (time.Time, error) {
	return parseDate("start_date", c.StartDate)
}

// End parses EndDate in UTC.
func (c *Config) End() (time.Time, error) {
	return parseDate("end_date", c.EndDate)
}

func parseDate(key, v string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidConfig, key, v, err)
	}
	return t, nil
}

// Validate checks ranges and enumerations. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeGeneral, ModeHotel:
	default:
		return invalid("mode must be %q or %q, got %q", ModeGeneral, ModeHotel, c.Mode)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return invalid("log_format must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	switch c.ChainMode {
	case ChainGlobal, ChainSegment:
	default:
		return invalid("chain_mode must be %q or %q, got %q", ChainGlobal, ChainSegment, c.ChainMode)
	}

	start, err := c.Start()
	if err != nil {
		return err
	}
	end, err := c.End()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return invalid("end_date %s is before start_date %s", c.EndDate, c.StartDate)
	}

	if c.Output == "" {
		return invalid("output must not be empty")
	}
	if c.Records < 0 {
		return invalid("records must not be negative, got %d", c.Records)
	}
	if c.Mode == ModeGeneral && c.Records > 0 && len(c.Segments) == 0 {
		return invalid("segments must not be empty")
	}
	if c.OutlierProbability < 0 || c.OutlierProbability > 1 {
		return invalid("outlier_probability must be within [0, 1], got %v", c.OutlierProbability)
	}
	if c.TotalRooms < 0 {
		return invalid("total_rooms must not be negative, got %d", c.TotalRooms)
	}
	if c.MaxCustomersPerDay < 1 {
		return invalid("max_customers_per_day must be at least 1, got %d", c.MaxCustomersPerDay)
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, got %d", c.Workers)
	}
	if c.DriftScale < 0 {
		return invalid("drift_scale must not be negative, got %v", c.DriftScale)
	}
	for i := 1; i < len(c.MetricsBuckets); i++ {
		if c.MetricsBuckets[i] <= c.MetricsBuckets[i-1] {
			return invalid("metrics_buckets must be strictly increasing, got %v", c.MetricsBuckets)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
