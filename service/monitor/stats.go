package monitor

import "time"

// CPUStats describes processor usage and topology.
type CPUStats struct {
	UsagePercent  float64 `json:"usagePercent"`
	PhysicalCores int     `json:"physicalCores"`
	LogicalCores  int     `json:"logicalCores"`
	FrequencyMhz  float64 `json:"frequencyMhz,omitempty"`
}

// MemoryStats describes virtual memory and swap usage, in bytes.
type MemoryStats struct {
	Total        uint64  `json:"total"`
	Available    uint64  `json:"available"`
	Used         uint64  `json:"used"`
	Free         uint64  `json:"free"`
	UsagePercent float64 `json:"usagePercent"`
	SwapTotal    uint64  `json:"swapTotal"`
	SwapUsed     uint64  `json:"swapUsed"`
	SwapFree     uint64  `json:"swapFree"`
	SwapPercent  float64 `json:"swapPercent"`
}

// DiskStats describes usage of the filesystem holding path.
type DiskStats struct {
	Path         string  `json:"path"`
	Total        uint64  `json:"total"`
	Used         uint64  `json:"used"`
	Free         uint64  `json:"free"`
	UsagePercent float64 `json:"usagePercent"`
}

// ProcessStats describes one running process.
type ProcessStats struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float32 `json:"memoryPercent"`
}

// NetworkStats aggregates IO counters across all interfaces.
type NetworkStats struct {
	BytesSent   uint64 `json:"bytesSent"`
	BytesRecv   uint64 `json:"bytesRecv"`
	PacketsSent uint64 `json:"packetsSent"`
	PacketsRecv uint64 `json:"packetsRecv"`
	ErrIn       uint64 `json:"errin"`
	ErrOut      uint64 `json:"errout"`
	DropIn      uint64 `json:"dropin"`
	DropOut     uint64 `json:"dropout"`
}

// SystemStats describes the host itself.
type SystemStats struct {
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	Architecture    string `json:"architecture"`
	Hostname        string `json:"hostname"`
}

// Snapshot bundles everything the system-info API exposes.
type Snapshot struct {
	System    *SystemStats   `json:"system,omitempty"`
	CPU       *CPUStats      `json:"cpu,omitempty"`
	Memory    *MemoryStats   `json:"memory,omitempty"`
	Disk      *DiskStats     `json:"disk,omitempty"`
	Network   *NetworkStats  `json:"network,omitempty"`
	Uptime    float64        `json:"uptime"`
	Processes []ProcessStats `json:"processes,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
