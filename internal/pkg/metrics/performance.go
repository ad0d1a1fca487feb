package metrics

import (
	"runtime"
	"time"
)

type PerformanceMetrics struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	MemoryUsage  uint64
	AllocObjects uint64
	GCCycles     uint32
	Operations   int64
}

// CapturePerformance runs fn and records its wall time and allocation
// profile. fn returns how many operations it performed.
func CapturePerformance(fn func() int64) *PerformanceMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc
	startMallocs := stats.Mallocs
	startGC := stats.NumGC

	metrics := &PerformanceMetrics{
		StartTime: time.Now(),
	}

	metrics.Operations = fn()

	runtime.ReadMemStats(&stats)
	metrics.EndTime = time.Now()
	metrics.Duration = metrics.EndTime.Sub(metrics.StartTime)
	metrics.MemoryUsage = stats.TotalAlloc - startAlloc
	metrics.AllocObjects = stats.Mallocs - startMallocs
	metrics.GCCycles = stats.NumGC - startGC

	return metrics
}

func (p *PerformanceMetrics) OpsPerSecond() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return float64(p.Operations) / p.Duration.Seconds()
}

// AllocsPerOp is the number of heap objects allocated per operation.
func (p *PerformanceMetrics) AllocsPerOp() float64 {
	if p.Operations == 0 {
		return 0
	}
	return float64(p.AllocObjects) / float64(p.Operations)
}
