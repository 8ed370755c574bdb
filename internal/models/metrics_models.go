// internal/models/metrics_models.go
package models

// MetricPoint is one sample in a time series.
type MetricPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// CPUMetrics holds the current CPU usage percentage and hourly history.
type CPUMetrics struct {
	Percentage float64       `json:"percentage"`
	History    []MetricPoint `json:"history"`
}

// DiskMetrics holds disk I/O and swap rates in blocks/sec.
type DiskMetrics struct {
	IO      float64       `json:"io"`
	Swap    float64       `json:"swap"`
	History []MetricPoint `json:"history"`
}

// ThroughputMetrics holds in/out rates in Mbit/s for one address family.
type ThroughputMetrics struct {
	In      float64       `json:"in"`
	Out     float64       `json:"out"`
	History []MetricPoint `json:"history"`
}

// TransferUsage tracks network transfer consumption against the monthly cap,
// all values in bytes.
type TransferUsage struct {
	Used      float64       `json:"used"`
	Limit     float64       `json:"limit"`
	Remaining float64       `json:"remaining"`
	History   []MetricPoint `json:"history,omitempty"`
}

// NetworkMetrics groups per-family throughput and transfer usage.
type NetworkMetrics struct {
	IPv4     ThroughputMetrics `json:"ipv4"`
	IPv6     ThroughputMetrics `json:"ipv6"`
	Transfer TransferUsage     `json:"transfer"`
	History  []MetricPoint     `json:"history"`
}

// MemoryMetrics holds memory usage in bytes plus a percentage and history.
type MemoryMetrics struct {
	Used       float64       `json:"used"`
	Total      float64       `json:"total"`
	Percentage float64       `json:"percentage"`
	History    []MetricPoint `json:"history"`
}

// MetricsSnapshot is a per-request instance telemetry snapshot.
type MetricsSnapshot struct {
	CPU     CPUMetrics     `json:"cpu"`
	Disk    DiskMetrics    `json:"disk"`
	Network NetworkMetrics `json:"network"`
	Memory  MemoryMetrics  `json:"memory"`
}

// DNSResolver is one provider resolver pair.
type DNSResolver struct {
	IPv4 string `json:"ipv4"`
	IPv6 string `json:"ipv6"`
}

// NetworkInfo is the per-instance network overview: transfer usage against
// the monthly cap, the provider resolver list, and daily transfer history.
type NetworkInfo struct {
	Transfer     TransferUsage `json:"transfer"`
	DNSResolvers []DNSResolver `json:"dnsResolvers"`
	History      []MetricPoint `json:"history"`
}
