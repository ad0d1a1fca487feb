package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"hashcrack/internal/core/domain"
)

// Reporter buffers run results and appends them to a JSON lines file.
type Reporter struct {
	mu      sync.Mutex
	out     io.WriteCloser
	pending []domain.CrackResult
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return NewWriterReporter(file), nil
}

func NewWriterReporter(out io.WriteCloser) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Record(result domain.CrackResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, result)
}

func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.out)
	for i, result := range r.pending {
		if err := enc.Encode(result); err != nil {
			r.pending = r.pending[i:]
			return err
		}
	}
	r.pending = r.pending[:0]
	return nil
}

func (r *Reporter) Close() error {
	if err := r.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return r.out.Close()
}
