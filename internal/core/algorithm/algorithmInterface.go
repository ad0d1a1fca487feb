package algorithm

import (
	"hashcrack/internal/core/domain"
)

// Source produces a lazy, finite, forward-only sequence of candidates.
// Iteration follows bufio.Scanner: call Next until it returns false, then
// check Err. A source cannot be restarted; build a new one instead.
type Source interface {
	Next() bool
	Candidate() string
	Err() error
	// Total is the number of candidates the source will produce. ok is false
	// when the count is unknown or does not fit in an int64.
	Total() (total int64, ok bool)
	Name() domain.AttackMode
	Close() error
}
