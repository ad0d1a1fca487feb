package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"hashcrack/internal/core/domain"
)

// Collector samples process and host resource usage. Samples are cached for
// updateInterval so progress rendering can ask for them freely.
type Collector struct {
	mu             sync.Mutex
	last           domain.ResourceMetrics
	updateInterval time.Duration
}

func NewCollector(interval time.Duration) *Collector {
	return &Collector{
		updateInterval: interval,
	}
}

func (c *Collector) Sample() domain.ResourceMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.last.LastUpdated.IsZero() && time.Since(c.last.LastUpdated) < c.updateInterval {
		return c.last
	}

	// Interval 0 measures against the previous call and does not sleep.
	if usage, err := cpu.Percent(0, false); err == nil && len(usage) > 0 {
		c.last.CPUUsage = usage[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		c.last.SystemMemUsed = vm.UsedPercent
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	c.last.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)
	c.last.LastUpdated = time.Now()

	return c.last
}
