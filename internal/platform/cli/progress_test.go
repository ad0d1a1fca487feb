package cli

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hashcrack/internal/core/domain"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgressPrinterLifecycle(t *testing.T) {
	var out syncBuffer
	sample := func() domain.ResourceMetrics { return domain.ResourceMetrics{CPUUsage: 42, MemoryUsageMB: 7} }
	printer := newProgressPrinter(&out, nil, sample)

	printer.Start()
	printer.Report(domain.StatsSnapshot{Attempts: 2500, Total: 10000, TotalKnown: true, Rate: 1250})
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Progress: 2,500/10,000 (25.00%)"))
	}, time.Second, 5*time.Millisecond)
	printer.Stop()
	printer.Stop()

	assert.Contains(t, out.String(), "1250 h/s")
	assert.Contains(t, out.String(), "CPU 42% - 7MB")
}

func TestProgressPrinterPollsSnapshot(t *testing.T) {
	var out syncBuffer
	snapshot := func() domain.StatsSnapshot { return domain.StatsSnapshot{Attempts: 99} }
	printer := newProgressPrinter(&out, snapshot, nil)

	printer.Start()
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Progress: 99 - 0 h/s"))
	}, 2*time.Second, 10*time.Millisecond)
	printer.Stop()
}

func TestFormatCount(t *testing.T) {
	tests := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		123456:     "123,456",
		1234567890: "1,234,567,890",
		-4200:      "-4,200",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatCount(n))
	}
}
