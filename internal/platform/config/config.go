// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"safelink/internal/platform/errors"
)

// Config is the process configuration, resolved from (lowest to highest
// priority) defaults, an optional YAML file, SAFELINK_* environment
// variables, and CLI flags.
type Config struct {
	// URL single URL to classify in CLI mode
	URL string `yaml:"-"`

	// ModelDir directory holding the trained model artifacts
	ModelDir string `yaml:"model_dir"`

	// Serve run the HTTP API instead of a one-shot classification
	Serve bool `yaml:"serve"`

	// Listen address for the HTTP API
	Listen string `yaml:"listen"`

	// OutputDir when set, classification results are also exported as
	// JSON files into this directory
	OutputDir string `yaml:"output_dir"`

	// JSONOut print the result as JSON on stdout instead of the panel
	JSONOut bool `yaml:"json"`

	// Table print the result as a plain-text table instead of the panel,
	// for terminals where the colored box is unwanted
	Table bool `yaml:"table"`

	// Quiet suppress the terminal panel and informational logging
	Quiet bool `yaml:"quiet"`

	// PrintVersion print version information and exit
	PrintVersion bool `yaml:"-"`

	// ShowStatus print model artifact status and exit
	ShowStatus bool `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ModelDir: "models",
		Listen:   ":5000",
	}
}

// Load resolves the configuration: defaults -> YAML file -> ENV -> flags
// (flags win). The YAML file path comes from SAFELINK_CONFIG and defaults
// to ./safelink.yaml; a missing file is not an error.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	if err := loadFromFile(&cfg); err != nil {
		return cfg, err
	}
	loadFromEnv(&cfg)
	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}
	normalize(&cfg)

	return cfg, nil
}

// loadFromFile overlays values from the optional YAML config file.
func loadFromFile(cfg *Config) error {
	path := getenv("SAFELINK_CONFIG", "safelink.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(errors.ErrInvalidConfig, "cannot read %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "cannot parse %s: %v", path, err)
	}
	return nil
}

// loadFromEnv overlays configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("SAFELINK_MODEL_DIR", ""); v != "" {
		cfg.ModelDir = v
	}
	if v := getenv("SAFELINK_SERVE", ""); v != "" {
		cfg.Serve = parseBool(v)
	}
	if v := getenv("SAFELINK_LISTEN", ""); v != "" {
		cfg.Listen = v
	}
	if v := getenv("SAFELINK_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("SAFELINK_JSON", ""); v != "" {
		cfg.JSONOut = parseBool(v)
	}
	if v := getenv("SAFELINK_TABLE", ""); v != "" {
		cfg.Table = parseBool(v)
	}
	if v := getenv("SAFELINK_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
}

// loadFromFlags parses CLI flags (highest priority).
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("safelink", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { fmt.Fprint(os.Stderr, helpText) }

	fs.StringVarP(&cfg.URL, "url", "u", cfg.URL, "URL to classify")
	fs.StringVarP(&cfg.ModelDir, "model-dir", "m", cfg.ModelDir, "Directory with trained model artifacts")
	fs.BoolVarP(&cfg.Serve, "serve", "s", cfg.Serve, "Run the HTTP API server")
	fs.StringVarP(&cfg.Listen, "listen", "l", cfg.Listen, "HTTP API listen address")
	fs.StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "Directory for JSON result export")
	fs.BoolVarP(&cfg.JSONOut, "json", "j", cfg.JSONOut, "Print result as JSON on stdout")
	fs.BoolVarP(&cfg.Table, "table", "t", cfg.Table, "Print result as a plain-text table")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress panel output and info logging")
	fs.BoolVar(&cfg.ShowStatus, "status", false, "Print model artifact status and exit")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	// A bare positional argument is treated as the URL, so
	// `safelink https://example.com` works.
	if cfg.URL == "" && fs.NArg() > 0 {
		cfg.URL = fs.Arg(0)
	}

	return nil
}

func normalize(c *Config) {
	c.URL = strings.TrimSpace(c.URL)
	if c.ModelDir == "" {
		c.ModelDir = "models"
	}
	if c.Listen == "" {
		c.Listen = ":5000"
	}
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
}
