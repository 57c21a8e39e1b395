// Package config provides configuration management using Viper, including
// decoding of retry strategies from configuration subtrees.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-again/again/retry"
)

// Delay policy names accepted in configuration.
const (
	PolicyNone        = "none"
	PolicyFixed       = "fixed"
	PolicyExponential = "exponential"
)

// Config wraps a Viper configuration instance.
type Config struct {
	v *viper.Viper
}

// New creates a new Config instance.
func New() *Config {
	v := viper.New()
	return &Config{v: v}
}

// Load reads configuration from the given file and, if provided, a .env file.
// Environment variables and command-line flags are bound as overrides.
func (c *Config) Load(configFilePath, envFilePath, envPrefix string) error {
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", envFilePath, err)
		}
	}

	c.v.AutomaticEnv()

	if envPrefix != "" {
		c.v.SetEnvPrefix(envPrefix)
	}

	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	c.v.SetConfigFile(configFilePath)

	err := c.v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFilePath, err)
	}

	c.v.BindPFlags(pflag.CommandLine)

	return nil
}

// DefineFlag declares a command-line flag (short and long form) and binds it
// to a configuration key.
func (c *Config) DefineFlag(short, long, configKey string, defaultValue any, usage string) (err error) {
	switch v := defaultValue.(type) {
	case string:
		pflag.StringP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case int:
		pflag.IntP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case bool:
		pflag.BoolP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case float64:
		pflag.Float64P(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case time.Duration:
		pflag.DurationP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	}
	return
}

// ParseFlags parses the declared flags.
func (c *Config) ParseFlags() {
	pflag.Parse()
}

// Strategy decodes a retry strategy from the configuration subtree at key.
// Recognized sub-keys: retries (int), policy (none|fixed|exponential),
// delay (duration), multiplier (float). Missing sub-keys fall back to the
// default strategy's values.
func (c *Config) Strategy(key string) (retry.Strategy, error) {
	strat := retry.Default()

	if k := key + ".retries"; c.v.IsSet(k) {
		retries := c.v.GetInt(k)
		if retries < 0 {
			return retry.Strategy{}, fmt.Errorf("%s: retries must be non-negative, got %d", k, retries)
		}
		strat.Retries = retries
	}

	policy := c.v.GetString(key + ".policy")
	switch policy {
	case "", PolicyNone:
		strat.Delay = retry.NoDelay{}
	case PolicyFixed:
		strat.Delay = retry.Fixed(c.v.GetDuration(key + ".delay"))
	case PolicyExponential:
		multiplier := c.v.GetFloat64(key + ".multiplier")
		if multiplier == 0 {
			multiplier = 2
		}
		strat.Delay = retry.Exponential{
			Initial:    c.v.GetDuration(key + ".delay"),
			Multiplier: multiplier,
		}
	default:
		return retry.Strategy{}, fmt.Errorf("%s.policy: unknown delay policy %q", key, policy)
	}

	return strat, nil
}

// GetString returns the string value for the given key.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns the integer value for the given key.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns the boolean value for the given key.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetFloat64 returns the float value for the given key.
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetDuration returns the duration value for the given key.
func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// Unmarshal decodes the configuration into a struct.
func (c *Config) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	return c.v.Unmarshal(rawVal, opts...)
}

// SetDefault sets a default value for a key.
func (c *Config) SetDefault(key string, value any) {
	c.v.SetDefault(key, value)
}
