package port

import (
	"hashcrack/internal/core/domain"
)

// Hasher computes the lowercase hex digest of one candidate. Implementations
// must be safe for concurrent use.
type Hasher interface {
	Algorithm() domain.HashAlgorithm
	HexLength() int
	Digest(text string) string
}

// DigestProvider resolves an algorithm once, ahead of the attack loop.
type DigestProvider interface {
	Hasher(algorithm domain.HashAlgorithm) (Hasher, error)
}

// StatsSink receives periodic snapshots from a running engine. Report is
// called on the engine's goroutine and must return quickly.
type StatsSink interface {
	Report(snapshot domain.StatsSnapshot)
}

// StatsSinkFunc adapts a plain function to StatsSink.
type StatsSinkFunc func(snapshot domain.StatsSnapshot)

func (f StatsSinkFunc) Report(snapshot domain.StatsSnapshot) {
	f(snapshot)
}
