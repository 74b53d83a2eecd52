package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "Host memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "battery_delivery_heap_alloc_bytes",
			Help: "Go heap allocation of the delivery service",
		},
	)

	DBPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "battery_delivery_db_pool_connections",
			Help: "Postgres pool connections by state",
		},
		[]string{"state"},
	)
)

// PoolStats снимок пула соединений postgres.
type PoolStats struct {
	Acquired int32
	Idle     int32
	Total    int32
}

// StartSystemMetricsCollector снимает метрики хоста и пула каждые interval до отмены ctx.
// poolStats может быть nil.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration, poolStats func() PoolStats) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(poolStats)
			}
		}
	}()
}

func collectSystemMetrics(poolStats func() PoolStats) {
	// нулевой интервал сравнивает с предыдущим вызовом и не блокирует
	cpuPercent, err := cpu.Percent(0, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	if poolStats != nil {
		stats := poolStats()
		DBPoolConnections.WithLabelValues("acquired").Set(float64(stats.Acquired))
		DBPoolConnections.WithLabelValues("idle").Set(float64(stats.Idle))
		DBPoolConnections.WithLabelValues("total").Set(float64(stats.Total))
	}
}
