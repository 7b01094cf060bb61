package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/termsh/service/monitor"
)

// stubCollector returns canned stats so formatting can be asserted without
// touching the host.
type stubCollector struct {
	failing bool
}

func (s *stubCollector) CPUInfo() (*monitor.CPUStats, error) {
	if s.failing {
		return nil, errors.New("probe failed")
	}
	return &monitor.CPUStats{UsagePercent: 42.5, PhysicalCores: 8, LogicalCores: 16, FrequencyMhz: 2400.0}, nil
}

func (s *stubCollector) MemoryInfo() (*monitor.MemoryStats, error) {
	if s.failing {
		return nil, errors.New("probe failed")
	}
	return &monitor.MemoryStats{
		Total:        16 * 1024 * 1024 * 1024,
		Available:    8 * 1024 * 1024 * 1024,
		Used:         8 * 1024 * 1024 * 1024,
		UsagePercent: 50.0,
	}, nil
}

func (s *stubCollector) DiskInfo(path string) (*monitor.DiskStats, error) {
	if s.failing {
		return nil, errors.New("probe failed")
	}
	return &monitor.DiskStats{
		Path:         path,
		Total:        512 * 1024 * 1024 * 1024,
		Used:         128 * 1024 * 1024 * 1024,
		Free:         384 * 1024 * 1024 * 1024,
		UsagePercent: 25.0,
	}, nil
}

func (s *stubCollector) ProcessList(limit int) ([]monitor.ProcessStats, error) {
	if s.failing {
		return nil, errors.New("probe failed")
	}
	list := []monitor.ProcessStats{
		{PID: 100, Name: "busy", Status: "R", CPUPercent: 90.0, MemoryPercent: 5.0},
		{PID: 200, Name: "idle", Status: "S", CPUPercent: 1.0, MemoryPercent: 0.5},
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *stubCollector) NetworkInfo() (*monitor.NetworkStats, error) {
	return &monitor.NetworkStats{}, nil
}

func (s *stubCollector) Uptime() (time.Duration, error) {
	return time.Hour, nil
}

func (s *stubCollector) Snapshot(processLimit int) (*monitor.Snapshot, error) {
	return &monitor.Snapshot{}, nil
}

func TestService_CPU(t *testing.T) {
	service := New(&stubCollector{})
	output, err := service.cpu(context.Background(), nil)
	assert.Nil(t, err)
	assert.Equal(t, "CPU Usage: 42.5%\nCPU Cores: 8\nCPU Frequency: 2400.00 MHz", output)
}

func TestService_Memory(t *testing.T) {
	service := New(&stubCollector{})
	output, err := service.memory(context.Background(), nil)
	assert.Nil(t, err)
	assert.Contains(t, output, "Total Memory: 16 GiB")
	assert.Contains(t, output, "Memory Usage: 50.0%")
}

func TestService_Disk(t *testing.T) {
	service := New(&stubCollector{})
	output, err := service.disk(context.Background(), nil)
	assert.Nil(t, err)
	assert.Contains(t, output, "Total Disk Space: 512 GiB")
	assert.Contains(t, output, "Disk Usage: 25.0%")
}

func TestService_Processes(t *testing.T) {
	service := New(&stubCollector{}, WithProcessLimit(1))
	output, err := service.processes(context.Background(), nil)
	assert.Nil(t, err)
	assert.Contains(t, output, "PID")
	assert.Contains(t, output, "busy")
	assert.NotContains(t, output, "idle", "process limit caps the listing")
}

func TestService_Unavailable(t *testing.T) {
	testCases := []struct {
		description string
		service     *Service
	}{
		{description: "nil collector", service: New(nil)},
		{description: "failing collector", service: New(&stubCollector{failing: true})},
	}
	commands := []func(context.Context, []string) (string, error){}
	for _, testCase := range testCases {
		commands = append(commands,
			testCase.service.cpu,
			testCase.service.memory,
			testCase.service.disk,
			testCase.service.processes)
	}
	for _, command := range commands {
		output, err := command(context.Background(), nil)
		assert.Nil(t, err)
		assert.Equal(t, unavailableMessage, output)
	}
}
