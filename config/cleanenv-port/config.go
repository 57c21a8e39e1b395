// Package cleanenvport provides a unified way to load and validate application
// configuration from a file (YAML/JSON/TOML) using cleanenv and validator,
// with a ready-made structure for the toolkit's retry and logging settings.
package cleanenvport

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/go-again/again/retry"
)

var (
	// ErrConfigPathNotSet is returned when neither --config flag nor CONFIG_PATH env var is set.
	ErrConfigPathNotSet = errors.New("config path not set")
	// ErrConfigFileNotFound is returned when the config file does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrConfigValidation is returned when the config structure fails validation.
	ErrConfigValidation = errors.New("config validation failed")
)

type (
	// ToolkitConfig aggregates the toolkit's configurable sections.
	ToolkitConfig struct {
		Retry RetryCfg `yaml:"retry"`
		Log   LogCfg   `yaml:"log"`
	}

	// RetryCfg describes a retry strategy in configuration form.
	RetryCfg struct {
		Retries    int           `yaml:"retries" env:"RETRY_RETRIES" env-default:"3" validate:"min=0"`
		Policy     string        `yaml:"policy" env:"RETRY_POLICY" env-default:"none" validate:"oneof=none fixed exponential"`
		Delay      time.Duration `yaml:"delay" env:"RETRY_DELAY" validate:"min=0"`
		Multiplier float64       `yaml:"multiplier" env:"RETRY_MULTIPLIER" env-default:"2" validate:"min=0"`
	}

	// LogCfg describes the diagnostic stream settings.
	LogCfg struct {
		Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"zerolog" validate:"oneof=zerolog zap logrus slog"`
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	}
)

// Strategy converts the configuration form into a retry.Strategy.
func (c RetryCfg) Strategy() retry.Strategy {
	strat := retry.Strategy{Retries: c.Retries, Delay: retry.NoDelay{}}
	switch c.Policy {
	case "fixed":
		strat.Delay = retry.Fixed(c.Delay)
	case "exponential":
		strat.Delay = retry.Exponential{Initial: c.Delay, Multiplier: c.Multiplier}
	}
	return strat
}

// Load reads configuration from a file path specified via --config flag or
// CONFIG_PATH environment variable, then validates the config structure using
// validator tags. Returns an error if the path is not set, the file doesn't
// exist, or validation fails.
func Load(cfg any) error {
	path := fetchConfigPath()
	if path == "" {
		return fmt.Errorf("%w (use --config flag or CONFIG_PATH env)", ErrConfigPathNotSet)
	}
	return LoadPath(path, cfg)
}

// LoadPath loads and validates configuration from the given file path.
// It checks that the file exists, reads it using cleanenv, and validates
// the resulting struct using go-playground/validator.
// Returns a descriptive error on any failure.
func LoadPath(configPath string, cfg any) error {
	validate := validator.New()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, formatValidationError(err))
	}

	return nil
}

// formatValidationError converts validator.ValidationErrors into a human-readable string.
// Each field error is formatted as "FieldName=value (tag)", and all are joined with "; ".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var msgs []string
		for _, ve := range validationErrs {
			msgs = append(msgs, fmt.Sprintf("%s=%v (%s)", ve.Field(), ve.Value(), ve.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrConfigValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %w", ErrConfigValidation, err)
}

// fetchConfigPath retrieves the configuration file path from the --config
// command-line flag, falling back to the CONFIG_PATH environment variable.
// Returns the resolved path or an empty string if neither is set.
func fetchConfigPath() string {
	var path string
	if f := flag.Lookup("config"); f != nil {
		path = f.Value.String()
	} else {
		flag.StringVar(&path, "config", "", "path to config file")
		flag.Parse()
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
