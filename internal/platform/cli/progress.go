package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hashcrack/internal/core/domain"
)

const (
	progressTick     = 500 * time.Millisecond
	progressMinDelay = 100 * time.Millisecond
)

// progressPrinter renders a single updating progress line. Report is the
// engine's stats sink: it stores the snapshot and wakes the render loop
// without blocking. The ticker covers slow algorithms between reports by
// polling the engine's snapshot accessor.
type progressPrinter struct {
	out      io.Writer
	snapshot func() domain.StatsSnapshot
	sample   func() domain.ResourceMetrics
	limiter  *rate.Limiter

	mu       sync.Mutex
	last     domain.StatsSnapshot
	updates  chan struct{}
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func newProgressPrinter(out io.Writer, snapshot func() domain.StatsSnapshot, sample func() domain.ResourceMetrics) *progressPrinter {
	return &progressPrinter{
		out:      out,
		snapshot: snapshot,
		sample:   sample,
		limiter:  rate.NewLimiter(rate.Every(progressMinDelay), 1),
		updates:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (p *progressPrinter) Start() {
	go p.loop()
}

func (p *progressPrinter) Report(snapshot domain.StatsSnapshot) {
	p.mu.Lock()
	p.last = snapshot
	p.mu.Unlock()

	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// Stop ends the render loop and clears the progress line.
func (p *progressPrinter) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		<-p.stopped
		fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", 100))
	})
}

func (p *progressPrinter) loop() {
	defer close(p.stopped)
	ticker := time.NewTicker(progressTick)
	defer ticker.Stop()

	for {
		select {
		case <-p.updates:
			p.mu.Lock()
			snap := p.last
			p.mu.Unlock()
			p.render(snap)
		case <-ticker.C:
			if p.snapshot != nil {
				p.render(p.snapshot())
			}
		case <-p.done:
			return
		}
	}
}

func (p *progressPrinter) render(snap domain.StatsSnapshot) {
	if !p.limiter.Allow() {
		return
	}
	line := formatProgress(snap)
	if p.sample != nil {
		res := p.sample()
		line += fmt.Sprintf(" - CPU %.0f%% - %dMB", res.CPUUsage, res.MemoryUsageMB)
	}
	fmt.Fprintf(p.out, "\r%s %s", colorInfo("[*]"), line)
}

func formatProgress(snap domain.StatsSnapshot) string {
	if pct := snap.Progress(); pct >= 0 {
		return fmt.Sprintf("Progress: %s/%s (%.2f%%) - %.0f h/s",
			formatCount(snap.Attempts), formatCount(snap.Total), pct, snap.Rate)
	}
	return fmt.Sprintf("Progress: %s - %.0f h/s", formatCount(snap.Attempts), snap.Rate)
}

// formatCount renders n with thousands separators.
func formatCount(n int64) string {
	s := fmt.Sprint(n)
	if n < 0 {
		return "-" + formatCount(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
