// Package monitor collects host metrics (CPU, memory, disk, process,
// network) through gopsutil. The Collector interface lets the metrics
// built-ins degrade gracefully when no collector is wired in.
package monitor

import (
	"runtime"
	"sort"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	gnet "github.com/shirou/gopsutil/net"
	"github.com/shirou/gopsutil/process"
	"github.com/viant/termsh/internal/clock"
)

// Collector reports host metrics on request. Implementations own no state
// about who asks.
type Collector interface {
	CPUInfo() (*CPUStats, error)
	MemoryInfo() (*MemoryStats, error)
	DiskInfo(path string) (*DiskStats, error)
	ProcessList(limit int) ([]ProcessStats, error)
	NetworkInfo() (*NetworkStats, error)
	Uptime() (time.Duration, error)
	Snapshot(processLimit int) (*Snapshot, error)
}

// SystemCollector is the gopsutil-backed Collector.
type SystemCollector struct {
	sampleInterval time.Duration
}

// Option customizes a SystemCollector.
type Option func(c *SystemCollector)

// WithSampleInterval overrides how long CPU usage is sampled for. A zero
// interval returns the usage since the previous call, which is what tests
// want.
func WithSampleInterval(interval time.Duration) Option {
	return func(c *SystemCollector) {
		c.sampleInterval = interval
	}
}

// New creates a collector sampling CPU usage over one second.
func New(options ...Option) *SystemCollector {
	c := &SystemCollector{sampleInterval: time.Second}
	for _, option := range options {
		option(c)
	}
	return c
}

// CPUInfo reports usage, core counts and the current frequency.
func (c *SystemCollector) CPUInfo() (*CPUStats, error) {
	percents, err := cpu.Percent(c.sampleInterval, false)
	if err != nil {
		return nil, err
	}
	stats := &CPUStats{}
	if len(percents) > 0 {
		stats.UsagePercent = percents[0]
	}
	if physical, err := cpu.Counts(false); err == nil {
		stats.PhysicalCores = physical
	}
	if logical, err := cpu.Counts(true); err == nil {
		stats.LogicalCores = logical
	}
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		stats.FrequencyMhz = info[0].Mhz
	}
	return stats, nil
}

// MemoryInfo reports virtual memory and swap usage.
func (c *SystemCollector) MemoryInfo() (*MemoryStats, error) {
	virtual, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	stats := &MemoryStats{
		Total:        virtual.Total,
		Available:    virtual.Available,
		Used:         virtual.Used,
		Free:         virtual.Free,
		UsagePercent: virtual.UsedPercent,
	}
	if swap, err := mem.SwapMemory(); err == nil {
		stats.SwapTotal = swap.Total
		stats.SwapUsed = swap.Used
		stats.SwapFree = swap.Free
		stats.SwapPercent = swap.UsedPercent
	}
	return stats, nil
}

// DiskInfo reports usage of the filesystem holding path.
func (c *SystemCollector) DiskInfo(path string) (*DiskStats, error) {
	if path == "" {
		path = "/"
	}
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}
	return &DiskStats{
		Path:         path,
		Total:        usage.Total,
		Used:         usage.Used,
		Free:         usage.Free,
		UsagePercent: usage.UsedPercent,
	}, nil
}

// ProcessList returns up to limit processes ordered by CPU usage,
// descending. Processes that vanish or deny access mid-walk are skipped.
func (c *SystemCollector) ProcessList(limit int) ([]ProcessStats, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	stats := make([]ProcessStats, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		entry := ProcessStats{PID: proc.Pid, Name: name}
		if status, err := proc.Status(); err == nil {
			entry.Status = status
		}
		if cpuPercent, err := proc.CPUPercent(); err == nil {
			entry.CPUPercent = cpuPercent
		}
		if memPercent, err := proc.MemoryPercent(); err == nil {
			entry.MemoryPercent = memPercent
		}
		stats = append(stats, entry)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].CPUPercent > stats[j].CPUPercent })
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// NetworkInfo reports IO counters aggregated across interfaces.
func (c *SystemCollector) NetworkInfo() (*NetworkStats, error) {
	counters, err := gnet.IOCounters(false)
	if err != nil {
		return nil, err
	}
	stats := &NetworkStats{}
	for _, counter := range counters {
		stats.BytesSent += counter.BytesSent
		stats.BytesRecv += counter.BytesRecv
		stats.PacketsSent += counter.PacketsSent
		stats.PacketsRecv += counter.PacketsRecv
		stats.ErrIn += counter.Errin
		stats.ErrOut += counter.Errout
		stats.DropIn += counter.Dropin
		stats.DropOut += counter.Dropout
	}
	return stats, nil
}

// Uptime reports how long the host has been up.
func (c *SystemCollector) Uptime() (time.Duration, error) {
	seconds, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// Snapshot bundles all metrics for the system-info API. Individual probe
// failures leave the corresponding section empty rather than failing the
// whole snapshot.
func (c *SystemCollector) Snapshot(processLimit int) (*Snapshot, error) {
	snapshot := &Snapshot{Timestamp: clock.Now()}
	if info, err := host.Info(); err == nil {
		snapshot.System = &SystemStats{
			Platform:        info.Platform,
			PlatformVersion: info.PlatformVersion,
			Architecture:    runtime.GOARCH,
			Hostname:        info.Hostname,
		}
	}
	snapshot.CPU, _ = c.CPUInfo()
	snapshot.Memory, _ = c.MemoryInfo()
	snapshot.Disk, _ = c.DiskInfo("/")
	snapshot.Network, _ = c.NetworkInfo()
	if uptime, err := c.Uptime(); err == nil {
		snapshot.Uptime = uptime.Seconds()
	}
	snapshot.Processes, _ = c.ProcessList(processLimit)
	return snapshot, nil
}
