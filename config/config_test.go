package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-again/again/config"
	"github.com/go-again/again/retry"
)

func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	cfg := config.New()
	require.NoError(t, cfg.Load(tmpFile.Name(), "", ""))
	return cfg
}

func TestStrategyFixed(t *testing.T) {
	cfg := loadConfig(t, `
retry:
  retries: 2
  policy: "fixed"
  delay: "100ms"
`)

	strat, err := cfg.Strategy("retry")
	require.NoError(t, err)
	assert.Equal(t, 2, strat.Retries)
	assert.Equal(t, retry.Fixed(100*time.Millisecond), strat.Delay)
}

func TestStrategyExponential(t *testing.T) {
	cfg := loadConfig(t, `
retry:
  retries: 4
  policy: "exponential"
  delay: "1s"
  multiplier: 1.5
`)

	strat, err := cfg.Strategy("retry")
	require.NoError(t, err)
	assert.Equal(t, retry.Exponential{Initial: time.Second, Multiplier: 1.5}, strat.Delay)
}

func TestStrategyDefaults(t *testing.T) {
	// An empty subtree falls back to the default strategy with no delay.
	cfg := loadConfig(t, `
retry: {}
`)

	strat, err := cfg.Strategy("retry")
	require.NoError(t, err)
	assert.Equal(t, retry.DefaultRetries, strat.Retries)
	assert.Equal(t, retry.NoDelay{}, strat.Delay)
}

func TestStrategyUnknownPolicy(t *testing.T) {
	cfg := loadConfig(t, `
retry:
  policy: "jittered"
`)

	_, err := cfg.Strategy("retry")
	assert.Error(t, err)
}

func TestStrategyNegativeRetries(t *testing.T) {
	cfg := loadConfig(t, `
retry:
  retries: -2
`)

	_, err := cfg.Strategy("retry")
	assert.Error(t, err)
}

func TestGetters(t *testing.T) {
	cfg := loadConfig(t, `
app:
  name: "again"
  workers: 4
  verbose: true
  timeout: "5s"
`)

	assert.Equal(t, "again", cfg.GetString("app.name"))
	assert.Equal(t, 4, cfg.GetInt("app.workers"))
	assert.True(t, cfg.GetBool("app.verbose"))
	assert.Equal(t, 5*time.Second, cfg.GetDuration("app.timeout"))
}
