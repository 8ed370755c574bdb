// internal/linode/metrics.go
package linode

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/xmdragon/linode-manager/internal/models"
)

// Telemetry is synthesized per request instead of relaying the provider's
// stats payload. This is deliberate demo/sandbox behavior carried over from
// the reference deployment; swapping in real stats is a product decision,
// not a bug fix.

const (
	gib = 1024 * 1024 * 1024

	// transferLimitBytes is the fixed monthly transfer cap (2 TiB).
	transferLimitBytes = 2000 * gib

	hourlyPoints = 24
	dailyPoints  = 30
)

// providerDNSResolvers is the fixed resolver list returned with network info.
var providerDNSResolvers = []models.DNSResolver{
	{IPv4: "139.162.11.5", IPv6: "2400:8901::5"},
	{IPv4: "139.162.13.5", IPv6: "2400:8901::4"},
	{IPv4: "139.162.14.5", IPv6: "2400:8901::b"},
	{IPv4: "139.162.15.5", IPv6: "2400:8901::3"},
	{IPv4: "139.162.16.5", IPv6: "2400:8901::9"},
	{IPv4: "139.162.21.5", IPv6: "2400:8901::2"},
	{IPv4: "139.162.27.5", IPv6: "2400:8901::8"},
	{IPv4: "103.3.60.18", IPv6: "2400:8901::7"},
	{IPv4: "103.3.60.19", IPv6: "2400:8901::c"},
	{IPv4: "103.3.60.20", IPv6: "2400:8901::6"},
}

// GetMetrics probes the provider's stats endpoint for the instance and, if
// that succeeds, returns a synthetic telemetry snapshot: current values plus
// 24 hourly history points for CPU/memory/disk/throughput and 30 daily
// points for transfer usage.
func (c *Client) GetMetrics(ctx context.Context, id int) (*models.MetricsSnapshot, error) {
	// The stats call gates the snapshot so unknown instances and provider
	// outages still surface as upstream failures.
	var stats json.RawMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/linode/instances/%d/stats", id), nil, &stats); err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.MetricsSnapshot{
		CPU: models.CPUMetrics{
			Percentage: rand.Float64() * 100,
			History:    hourlyHistory(now, 100),
		},
		Disk: models.DiskMetrics{
			IO:      rand.Float64() * 20,
			Swap:    rand.Float64() * 0.1,
			History: hourlyHistory(now, 20),
		},
		Network: models.NetworkMetrics{
			IPv4: models.ThroughputMetrics{
				In:      rand.Float64() * 10,
				Out:     rand.Float64() * 10,
				History: hourlyHistory(now, 10),
			},
			IPv6: models.ThroughputMetrics{
				In:      rand.Float64() * 2,
				Out:     rand.Float64() * 2,
				History: hourlyHistory(now, 2),
			},
			Transfer: syntheticTransfer(now),
			History:  dailyHistory(now, 5),
		},
		Memory: models.MemoryMetrics{
			Used:       rand.Float64() * 2048 * 1024 * 1024,
			Total:      2048 * 1024 * 1024,
			Percentage: rand.Float64() * 100,
			History:    hourlyHistory(now, 100),
		},
	}, nil
}

// GetNetworkInfo probes the instance endpoint and returns synthetic network
// data: transfer usage against the monthly cap, the provider resolver list,
// and 30 days of transfer history.
func (c *Client) GetNetworkInfo(ctx context.Context, id int) (*models.NetworkInfo, error) {
	if _, err := c.GetInstance(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now()
	transfer := syntheticTransfer(now)
	transfer.History = nil

	return &models.NetworkInfo{
		Transfer:     transfer,
		DNSResolvers: providerDNSResolvers,
		History:      dailyHistory(now, 5),
	}, nil
}

// syntheticTransfer fabricates usage against the fixed 2 TiB cap. Used and
// remaining are sampled independently, matching the reference behavior.
func syntheticTransfer(now time.Time) models.TransferUsage {
	return models.TransferUsage{
		Used:      rand.Float64() * 1000 * gib,
		Limit:     transferLimitBytes,
		Remaining: (2000 - rand.Float64()*1000) * gib,
		History:   dailyHistory(now, 5),
	}
}

// hourlyHistory returns 24 hourly-spaced points ending now, each value
// uniform in [0, max).
func hourlyHistory(now time.Time, max float64) []models.MetricPoint {
	points := make([]models.MetricPoint, hourlyPoints)
	for i := range points {
		points[i] = models.MetricPoint{
			Timestamp: now.Add(-time.Duration(hourlyPoints-1-i) * time.Hour).Format(time.RFC3339),
			Value:     rand.Float64() * max,
		}
	}
	return points
}

// dailyHistory returns 30 daily-spaced points ending now.
func dailyHistory(now time.Time, max float64) []models.MetricPoint {
	points := make([]models.MetricPoint, dailyPoints)
	for i := range points {
		points[i] = models.MetricPoint{
			Timestamp: now.Add(-time.Duration(dailyPoints-1-i) * 24 * time.Hour).Format(time.RFC3339),
			Value:     rand.Float64() * max,
		}
	}
	return points
}
