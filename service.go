package termsh

import (
	"github.com/viant/termsh/engine"
	"github.com/viant/termsh/service/advisor"
	"github.com/viant/termsh/service/builtin/fs"
	"github.com/viant/termsh/service/builtin/metrics"
	"github.com/viant/termsh/service/builtin/search"
	"github.com/viant/termsh/service/builtin/sysinfo"
	"github.com/viant/termsh/service/exec"
	"github.com/viant/termsh/service/monitor"
)

// Service is the termsh façade. It holds shared collaborators (config,
// metrics collector) and mints fully wired terminal sessions; each session
// owns its working directory, history and environment snapshot, so hosting
// front ends can serve many isolated clients.
type Service struct {
	config       *Config
	collector    monitor.Collector
	collectorSet bool
}

// Terminal bundles one session's engine with its advisory helper.
type Terminal struct {
	Engine   *engine.Engine
	Advisor  *advisor.Service
	fallback *exec.Service
}

// Close releases the terminal's external shell session.
func (t *Terminal) Close() error {
	if t.fallback == nil {
		return nil
	}
	return t.fallback.Close()
}

// New creates the façade.
func New(options ...Option) *Service {
	s := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(s)
	}
	if !s.collectorSet {
		s.collector = monitor.New()
	}
	return s
}

// Config exposes the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Collector exposes the metrics collector shared across sessions; it may be
// nil when metrics were disabled.
func (s *Service) Collector() monitor.Collector {
	return s.collector
}

// NewTerminal builds a terminal session rooted at the configured working
// directory (the process working directory when unset), with all built-ins
// registered and the external fallback wired in.
func (s *Service) NewTerminal() (*Terminal, error) {
	var session *engine.Session
	var err error
	if s.config.Workdir != "" {
		session, err = engine.NewSessionAt(s.config.Workdir)
	} else {
		session, err = engine.NewSession()
	}
	if err != nil {
		return nil, err
	}

	registry := engine.NewRegistry()
	fs.New(session).Register(registry)
	search.New(session).Register(registry)
	sysinfo.New(session).Register(registry)
	metrics.New(s.collector, metrics.WithProcessLimit(s.config.Metrics.ProcessLimit)).Register(registry)
	describeExternal(registry)

	fallback := exec.New(session)
	eng := engine.New(session, registry, fallback,
		engine.WithHistoryDisplaySize(s.config.History.DisplaySize))

	adv := advisor.New(session, registry.Descriptions(),
		advisor.WithConfidenceThreshold(s.config.Advisor.ConfidenceThreshold),
		advisor.WithSimilarityThreshold(s.config.Advisor.SimilarityThreshold))

	return &Terminal{Engine: eng, Advisor: adv, fallback: fallback}, nil
}

// describeExternal adds help-only entries for commands the engine
// recognises in help but serves through the external fallback.
func describeExternal(registry *engine.Registry) {
	registry.Describe("head", "Display first lines of file")
	registry.Describe("tail", "Display last lines of file")
	registry.Describe("kill", "Terminate processes")
	registry.Describe("jobs", "Display background jobs")
	registry.Describe("top", "Display system processes (top-like)")
	registry.Describe("sort", "Sort lines in files")
	registry.Describe("uniq", "Remove duplicate lines")
	registry.Describe("wc", "Count lines, words, characters")
	registry.Describe("tar", "Archive files")
	registry.Describe("zip", "Create zip archives")
	registry.Describe("unzip", "Extract zip archives")
	registry.Describe("ping", "Test network connectivity")
	registry.Describe("curl", "Transfer data from servers")
	registry.Describe("wget", "Download files from web")
}
