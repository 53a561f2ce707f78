package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvcut/bins"
	"github.com/katalvlaran/lvcut/dummies"
)

// EnvPrefix is the prefix of every environment override, e.g. LVCUT_CLOSED_SIDE.
const EnvPrefix = "LVCUT"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration of an encoding run.
type Config struct {
	// Interval assignment
	ClosedSide    string `yaml:"closed_side" envconfig:"CLOSED_SIDE" validate:"oneof=upper lower"`
	OnOutOfRange  string `yaml:"on_out_of_range" envconfig:"ON_OUT_OF_RANGE" validate:"oneof=fail drop clamp"`
	IncludeLowest bool   `yaml:"include_lowest" envconfig:"INCLUDE_LOWEST"`
	Precision     int    `yaml:"precision" envconfig:"PRECISION" validate:"gte=0,lte=17"`

	// Indicator expansion
	OnUnknownCategory string `yaml:"on_unknown_category" envconfig:"ON_UNKNOWN_CATEGORY" validate:"oneof=fail drop"`
	Delimiter         string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required"`
	Order             string `yaml:"order" envconfig:"ORDER" validate:"oneof=first_seen sorted"`
	TrimSpace         bool   `yaml:"trim_space" envconfig:"TRIM_SPACE"`
	PrefixSeparator   string `yaml:"prefix_separator" envconfig:"PREFIX_SEPARATOR"`

	// Execution
	Workers  int  `yaml:"workers" envconfig:"WORKERS" validate:"gte=0"`
	FailFast bool `yaml:"fail_fast" envconfig:"FAIL_FAST"`

	Columns []ColumnConfig `yaml:"columns" ignored:"true" validate:"dive"`
}

// ColumnConfig describes one input column. A column with Edges is numeric
// and binned; a column without Edges is a delimited categorical field.
type ColumnConfig struct {
	Name      string    `yaml:"name" validate:"required"`
	Edges     []float64 `yaml:"edges"`
	Labels    []string  `yaml:"labels"`
	Delimiter string    `yaml:"delimiter"` // overrides Config.Delimiter
	Prefix    string    `yaml:"prefix"`    // defaults to Name
}

// Numeric reports whether the column is binned.
func (c ColumnConfig) Numeric() bool { return len(c.Edges) > 0 }

// Default returns the documented defaults: right-closed intervals, failing
// on out-of-range values and unknown categories, "|" delimiter, first-seen
// order, "_" prefix separator, GOMAXPROCS workers.
func Default() Config {
	return Config{
		ClosedSide:        bins.DefaultClosedSide.String(),
		OnOutOfRange:      bins.DefaultOutOfRange.String(),
		IncludeLowest:     bins.DefaultIncludeLowest,
		Precision:         bins.DefaultPrecision,
		OnUnknownCategory: dummies.DefaultUnknown.String(),
		Delimiter:         "|",
		Order:             dummies.DefaultOrder.String(),
		PrefixSeparator:   "_",
		Workers:           dummies.DefaultWorkers,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and LVCUT_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Only variables that are set override; unset ones keep file/default values.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks enumerations and per-column structure.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Columns))
	for i, col := range c.Columns {
		if _, dup := seen[col.Name]; dup {
			return fmt.Errorf("%w: column %d: duplicate name %q", ErrInvalidConfig, i, col.Name)
		}
		seen[col.Name] = struct{}{}

		if !col.Numeric() {
			if len(col.Labels) > 0 {
				return fmt.Errorf("%w: column %q: labels require edges", ErrInvalidConfig, col.Name)
			}
			continue
		}
		// Structural bin errors surface here, before any record is read.
		opts, err := c.BinOptions(col)
		if err != nil {
			return err
		}
		if _, err := bins.New(col.Edges, opts...); err != nil {
			return fmt.Errorf("%w: column %q: %w", ErrInvalidConfig, col.Name, err)
		}
	}

	return nil
}

// Column returns the configuration of the named column.
func (c Config) Column(name string) (ColumnConfig, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}

	return ColumnConfig{}, false
}

// BinOptions translates the configuration into bins options for col.
func (c Config) BinOptions(col ColumnConfig) ([]bins.Option, error) {
	side, err := ParseClosedSide(c.ClosedSide)
	if err != nil {
		return nil, err
	}
	policy, err := ParseOutOfRange(c.OnOutOfRange)
	if err != nil {
		return nil, err
	}

	opts := []bins.Option{
		bins.WithClosedSide(side),
		bins.WithOutOfRange(policy),
		bins.WithPrecision(max(c.Precision, 0)),
	}
	if c.IncludeLowest {
		opts = append(opts, bins.WithIncludeLowest())
	}
	if c.FailFast {
		opts = append(opts, bins.WithFailFast())
	}
	if len(col.Labels) > 0 {
		opts = append(opts, bins.WithLabels(col.Labels...))
	}

	return opts, nil
}

// DummyOptions translates the configuration into dummies options.
func (c Config) DummyOptions() ([]dummies.Option, error) {
	order, err := ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	unknown, err := ParseUnknown(c.OnUnknownCategory)
	if err != nil {
		return nil, err
	}

	opts := []dummies.Option{dummies.WithOrder(order), dummies.WithUnknown(unknown)}
	if c.TrimSpace {
		opts = append(opts, dummies.WithTrimSpace())
	}
	if c.FailFast {
		opts = append(opts, dummies.WithFailFast())
	}
	if c.Workers > 0 {
		opts = append(opts, dummies.WithWorkers(c.Workers))
	}

	return opts, nil
}

// DelimiterFor returns the column delimiter, falling back to the global one.
func (c Config) DelimiterFor(col ColumnConfig) string {
	if col.Delimiter != "" {
		return col.Delimiter
	}

	return c.Delimiter
}

// PrefixFor returns the column name prefix used in combined tables.
func (c Config) PrefixFor(col ColumnConfig) string {
	if col.Prefix != "" {
		return col.Prefix
	}

	return col.Name
}

// ParseClosedSide maps "upper"/"lower" to bins.ClosedSide.
func ParseClosedSide(s string) (bins.ClosedSide, error) {
	switch s {
	case "upper":
		return bins.Upper, nil
	case "lower":
		return bins.Lower, nil
	}

	return 0, fmt.Errorf("%w: closed_side %q", ErrInvalidConfig, s)
}

// ParseOutOfRange maps "fail"/"drop"/"clamp" to bins.Policy.
func ParseOutOfRange(s string) (bins.Policy, error) {
	switch s {
	case "fail":
		return bins.Fail, nil
	case "drop":
		return bins.Drop, nil
	case "clamp":
		return bins.Clamp, nil
	}

	return 0, fmt.Errorf("%w: on_out_of_range %q", ErrInvalidConfig, s)
}

// ParseUnknown maps "fail"/"drop" to dummies.UnknownPolicy.
func ParseUnknown(s string) (dummies.UnknownPolicy, error) {
	switch s {
	case "fail":
		return dummies.Fail, nil
	case "drop":
		return dummies.Drop, nil
	}

	return 0, fmt.Errorf("%w: on_unknown_category %q", ErrInvalidConfig, s)
}

// ParseOrder maps "first_seen"/"sorted" to dummies.Order.
func ParseOrder(s string) (dummies.Order, error) {
	switch s {
	case "first_seen":
		return dummies.FirstSeen, nil
	case "sorted":
		return dummies.Sorted, nil
	}

	return 0, fmt.Errorf("%w: order %q", ErrInvalidConfig, s)
}
