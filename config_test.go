package termsh

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *Config)
		expectError bool
	}{
		{
			description: "defaults are valid",
			mutate:      func(c *Config) {},
		},
		{
			description: "zero history window",
			mutate:      func(c *Config) { c.History.DisplaySize = 0 },
			expectError: true,
		},
		{
			description: "confidence threshold out of range",
			mutate:      func(c *Config) { c.Advisor.ConfidenceThreshold = 1.5 },
			expectError: true,
		},
		{
			description: "negative similarity threshold",
			mutate:      func(c *Config) { c.Advisor.SimilarityThreshold = -0.1 },
			expectError: true,
		},
		{
			description: "zero process limit",
			mutate:      func(c *Config) { c.Metrics.ProcessLimit = 0 },
			expectError: true,
		},
		{
			description: "port out of range",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			expectError: true,
		},
	}
	for _, testCase := range testCases {
		config := DefaultConfig()
		testCase.mutate(config)
		err := config.Validate()
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
		} else {
			assert.Nil(t, err, testCase.description)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	document := `
workdir: /tmp
history:
  displaySize: 50
advisor:
  confidenceThreshold: 0.4
  similarityThreshold: 0.7
metrics:
  processLimit: 10
server:
  host: 127.0.0.1
  port: 8080
console:
  historyFile: /tmp/.termsh_history
`
	assert.Nil(t, os.WriteFile(location, []byte(document), 0o644))

	config, err := LoadConfig(context.Background(), location)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	assert.Equal(t, "/tmp", config.Workdir)
	assert.Equal(t, 50, config.History.DisplaySize)
	assert.Equal(t, 0.4, config.Advisor.ConfidenceThreshold)
	assert.Equal(t, 0.7, config.Advisor.SimilarityThreshold)
	assert.Equal(t, 10, config.Metrics.ProcessLimit)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "/tmp/.termsh_history", config.Console.HistoryFile)

	_, err = LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestLoadConfig_PartialOverlaysDefaults(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(location, []byte("server:\n  port: 9000\n"), 0o644))

	config, err := LoadConfig(context.Background(), location)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, 20, config.History.DisplaySize, "unset sections keep their defaults")
}

func TestLoadConfig_Invalid(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(location, []byte("history:\n  displaySize: -1\n"), 0o644))

	_, err := LoadConfig(context.Background(), location)
	assert.NotNil(t, err)
}
