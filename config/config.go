// Package config loads the tracker's configuration surface (spec.md
// §6.3): a YAML file as the primary format, environment variable
// overrides, or the legacy "name = value" text format the original
// implementation used.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FeatureKernelPair pairs a feature extractor with the kernel evaluated
// over it, matching Config.cpp's "feature <name> <kernel> [param]" line.
type FeatureKernelPair struct {
	Feature string  `yaml:"feature"`
	Kernel  string  `yaml:"kernel"`
	Param   float64 `yaml:"param,omitempty"`
}

// Config is the tracker's full configuration surface: the core learner
// options from spec.md §6.3 plus the sequence/frame/feature options the
// original CLI recognized.
type Config struct {
	Seed      int64 `yaml:"seed" envconfig:"SEED"`
	QuietMode bool  `yaml:"quiet_mode" envconfig:"QUIET_MODE"`
	DebugMode bool  `yaml:"debug_mode" envconfig:"DEBUG_MODE"`

	SequenceBasePath string `yaml:"sequence_base_path"`
	SequenceName     string `yaml:"sequence_name"`
	ResultsPath      string `yaml:"results_path"`

	FrameWidth   int     `yaml:"frame_width"`
	FrameHeight  int     `yaml:"frame_height"`
	SearchRadius float64 `yaml:"search_radius" envconfig:"SEARCH_RADIUS"`

	SVMC          float64 `yaml:"svm_c" envconfig:"SVM_C"`
	SVMBudgetSize int     `yaml:"svm_budget_size" envconfig:"SVM_BUDGET_SIZE"`
	ProcessOld    bool    `yaml:"process_old"`
	OptimizeAll   bool    `yaml:"optimize_all"`
	SVMVariant    string  `yaml:"svm_variant"` // "standard" or "fuzzy"

	Loss        string `yaml:"loss"`        // "iou" or "distance"
	Manipulator string `yaml:"manipulator"` // "identity" or "smooth_step"

	Features []FeatureKernelPair `yaml:"features"`

	// UsePredictor enables the optional Kalman-filter search-center
	// predictor. Off by default: Tracker.cpp always samples around the
	// raw previous box.
	UsePredictor bool `yaml:"use_predictor"`

	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Defaults mirrors Config::SetDefaults from the original implementation.
func Defaults() Config {
	return Config{
		FrameWidth:   320,
		FrameHeight:  240,
		SearchRadius: 30,
		SVMC:         1.0,
		ProcessOld:   true,
		SVMVariant:   "standard",
		Loss:         "iou",
		Manipulator:  "identity",
		LogLevel:     "info",
	}
}

// Load reads a YAML configuration file, applies environment variable
// overrides via envconfig, and returns the merged result. Missing fields
// keep their Defaults() value.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s as YAML: %w", path, err)
	}
	if err := envconfig.Process("struck", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: applying environment overrides: %w", err)
	}

	return cfg, nil
}
