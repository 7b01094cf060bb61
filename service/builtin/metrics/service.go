package metrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/termsh/engine"
	"github.com/viant/termsh/service/monitor"
)

// unavailableMessage is returned whenever the collector is missing or a
// probe fails; metric commands never fail the whole dispatch.
const unavailableMessage = "system metrics unavailable"

const defaultProcessLimit = 20

// Service implements the cpu, memory, disk and ps built-ins by delegating
// to a monitor.Collector.
type Service struct {
	collector    monitor.Collector
	processLimit int
}

// Option customizes the metrics service.
type Option func(s *Service)

// WithProcessLimit overrides how many processes ps shows.
func WithProcessLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.processLimit = limit
		}
	}
}

// New creates a metrics service. A nil collector is allowed; every command
// then reports the fixed unavailable message.
func New(collector monitor.Collector, options ...Option) *Service {
	s := &Service{collector: collector, processLimit: defaultProcessLimit}
	for _, option := range options {
		option(s)
	}
	return s
}

// Register binds the metric built-ins to the registry.
func (s *Service) Register(registry *engine.Registry) {
	registry.Register("cpu", "Display CPU information", s.cpu)
	registry.Register("memory", "Display memory usage", s.memory)
	registry.Register("disk", "Display disk usage", s.disk)
	registry.Register("ps", "Display process information", s.processes)
}

func (s *Service) cpu(_ context.Context, _ []string) (string, error) {
	if s.collector == nil {
		return unavailableMessage, nil
	}
	stats, err := s.collector.CPUInfo()
	if err != nil {
		return unavailableMessage, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CPU Usage: %.1f%%\n", stats.UsagePercent)
	fmt.Fprintf(&b, "CPU Cores: %d\n", stats.PhysicalCores)
	if stats.FrequencyMhz > 0 {
		fmt.Fprintf(&b, "CPU Frequency: %.2f MHz\n", stats.FrequencyMhz)
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *Service) memory(_ context.Context, _ []string) (string, error) {
	if s.collector == nil {
		return unavailableMessage, nil
	}
	stats, err := s.collector.MemoryInfo()
	if err != nil {
		return unavailableMessage, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total Memory: %s\n", monitor.FormatBytes(stats.Total))
	fmt.Fprintf(&b, "Available Memory: %s\n", monitor.FormatBytes(stats.Available))
	fmt.Fprintf(&b, "Used Memory: %s\n", monitor.FormatBytes(stats.Used))
	fmt.Fprintf(&b, "Memory Usage: %.1f%%\n", stats.UsagePercent)
	return strings.TrimSpace(b.String()), nil
}

func (s *Service) disk(_ context.Context, args []string) (string, error) {
	if s.collector == nil {
		return unavailableMessage, nil
	}
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}
	stats, err := s.collector.DiskInfo(path)
	if err != nil {
		return unavailableMessage, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total Disk Space: %s\n", monitor.FormatBytes(stats.Total))
	fmt.Fprintf(&b, "Used Disk Space: %s\n", monitor.FormatBytes(stats.Used))
	fmt.Fprintf(&b, "Free Disk Space: %s\n", monitor.FormatBytes(stats.Free))
	fmt.Fprintf(&b, "Disk Usage: %.1f%%\n", stats.UsagePercent)
	return strings.TrimSpace(b.String()), nil
}

func (s *Service) processes(_ context.Context, _ []string) (string, error) {
	if s.collector == nil {
		return unavailableMessage, nil
	}
	list, err := s.collector.ProcessList(s.processLimit)
	if err != nil {
		return unavailableMessage, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-20s %-10s %-8s %-8s\n", "PID", "NAME", "STATUS", "CPU%", "MEM%")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, proc := range list {
		fmt.Fprintf(&b, "%-8d %-20s %-10s %-8.1f %-8.1f\n",
			proc.PID, proc.Name, proc.Status, proc.CPUPercent, proc.MemoryPercent)
	}
	return strings.TrimSpace(b.String()), nil
}
