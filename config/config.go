package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/thisisjab/numfilter/fault"
	"github.com/thisisjab/numfilter/filter"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger  LoggerConfig   `yaml:"logger"`
	Filters []FilterConfig `yaml:"filters"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Type   string `yaml:"type"`
	Output string `yaml:"output"`
}

// FilterConfig declares a single numeric filter.
// Exactly one of Operator (with Value) or Range must be set.
type FilterConfig struct {
	Attribute string       `yaml:"attribute"`
	Operator  string       `yaml:"operator"`
	Value     *float64     `yaml:"value"`
	Range     *RangeConfig `yaml:"range"`
	Negated   bool         `yaml:"negated"`
}

type RangeConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// ReadFile reads and decodes the YAML config file at path.
func ReadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file content: %w", err)
	}

	return Decode(bytes.NewReader(content))
}

// Decode decodes a YAML config. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	return cfg, nil
}

// Parse builds the logger and the deduplicated set of filters described by cfg.
// The logger is returned whenever it could be built, even if filters fail.
func (cfg Config) Parse() (*filter.Set, *slog.Logger, error) {
	logger, err := parseLoggerConfig(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}

	set := filter.NewSet()
	for i, fc := range cfg.Filters {
		f, err := parseFilterConfig(fc)
		if err != nil {
			return nil, logger, fmt.Errorf("cannot create filter #%d `%s`: %w", i, fc.Attribute, err)
		}

		if !set.Add(f) {
			logger.Warn("dropping duplicate filter.", "index", i, "filter", f.String())
		}
	}

	logger.Debug("parsed filters.", "declared", len(cfg.Filters), "distinct", set.Len())

	return set, logger, nil
}

func parseLoggerConfig(cfg LoggerConfig) (*slog.Logger, error) {
	var handler slog.Handler

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	var w io.Writer
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		return nil, fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "", "colored-text":
		handler = tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return nil, fmt.Errorf("invalid log type: %s", cfg.Type)
	}

	return slog.New(handler), nil
}

func parseFilterConfig(cfg FilterConfig) (filter.Numeric, error) {
	var opts []filter.Option
	if cfg.Negated {
		opts = append(opts, filter.Negated())
	}

	hasComparison := cfg.Operator != "" || cfg.Value != nil
	hasRange := cfg.Range != nil

	var f filter.Numeric
	switch {
	case hasComparison && hasRange:
		return filter.Numeric{}, fault.New(fault.BadInputCode, "").WithMetadata(fault.FieldErrorsMetadata{
			"range": []string{"Cannot be combined with operator and value."},
		})

	case hasRange:
		f = filter.NewRange(cfg.Attribute, cfg.Range.Lower, cfg.Range.Upper, opts...)

	case hasComparison:
		if cfg.Value == nil {
			return filter.Numeric{}, fault.New(fault.BadInputCode, "").WithMetadata(fault.FieldErrorsMetadata{
				"value": []string{"Field is required."},
			})
		}

		op, err := filter.ParseOperator(cfg.Operator)
		if err != nil {
			return filter.Numeric{}, fault.New(fault.BadInputCode, "").WithMetadata(fault.FieldErrorsMetadata{
				"operator": []string{err.Error()},
			})
		}

		f = filter.NewComparison(cfg.Attribute, op, *cfg.Value, opts...)

	default:
		return filter.Numeric{}, fault.New(fault.BadInputCode, "either operator and value, or range is required")
	}

	if err := f.Validate(); err != nil {
		return filter.Numeric{}, err
	}

	return f, nil
}
