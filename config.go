package termsh

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/termsh/service/advisor"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the terminal configuration. It
// can be populated from YAML or JSON; the zero value inherits all package
// defaults.
type Config struct {
	Workdir string        `json:"workdir,omitempty" yaml:"workdir,omitempty"`
	History HistoryConfig `json:"history" yaml:"history"`
	Advisor AdvisorConfig `json:"advisor" yaml:"advisor"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Console ConsoleConfig `json:"console" yaml:"console"`
}

// HistoryConfig controls history display.
type HistoryConfig struct {
	DisplaySize int `json:"displaySize" yaml:"displaySize"`
}

// AdvisorConfig carries the advisory matching thresholds.
type AdvisorConfig struct {
	ConfidenceThreshold float64 `json:"confidenceThreshold" yaml:"confidenceThreshold"`
	SimilarityThreshold float64 `json:"similarityThreshold" yaml:"similarityThreshold"`
}

// MetricsConfig controls the metrics built-ins.
type MetricsConfig struct {
	ProcessLimit int `json:"processLimit" yaml:"processLimit"`
}

// ServerConfig controls the HTTP gateway.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// ConsoleConfig controls the interactive console.
type ConsoleConfig struct {
	HistoryFile string `json:"historyFile,omitempty" yaml:"historyFile,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{DisplaySize: 20},
		Advisor: AdvisorConfig{
			ConfidenceThreshold: advisor.DefaultConfidenceThreshold,
			SimilarityThreshold: advisor.DefaultSimilarityThreshold,
		},
		Metrics: MetricsConfig{ProcessLimit: 20},
		Server:  ServerConfig{Host: "0.0.0.0", Port: 5000},
	}
}

// Validate returns an error describing invalid settings, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.History.DisplaySize <= 0 {
		return fmt.Errorf("history.displaySize must be > 0")
	}
	if c.Advisor.ConfidenceThreshold < 0 || c.Advisor.ConfidenceThreshold > 1 {
		return fmt.Errorf("advisor.confidenceThreshold must be within [0, 1]")
	}
	if c.Advisor.SimilarityThreshold < 0 || c.Advisor.SimilarityThreshold > 1 {
		return fmt.Errorf("advisor.similarityThreshold must be within [0, 1]")
	}
	if c.Metrics.ProcessLimit <= 0 {
		return fmt.Errorf("metrics.processLimit must be > 0")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}
	return nil
}

// LoadConfig reads a YAML config document from the supplied location,
// overlaying the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
