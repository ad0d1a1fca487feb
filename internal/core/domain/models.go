package domain

import (
	"fmt"
	"time"
)

// AttackConfig selects exactly one candidate-generation mode and the digest
// algorithm for a run. It is built once and not modified afterwards.
type AttackConfig struct {
	TargetDigest string        `json:"targetDigest"`
	Algorithm    HashAlgorithm `json:"algorithm"`
	Mode         AttackMode    `json:"mode"`
	WordlistPath string        `json:"wordlistPath,omitempty"`
	Charset      string        `json:"charset,omitempty"`
	MinLength    int           `json:"minLength,omitempty"`
	MaxLength    int           `json:"maxLength,omitempty"`
	Mask         string        `json:"mask,omitempty"`
}

// Validate checks the mode-independent and mode-specific parameters. The
// algorithm itself is checked against the digest registry by the service.
func (c AttackConfig) Validate() error {
	if c.TargetDigest == "" {
		return ErrEmptyTarget
	}
	switch c.Mode {
	case ModeDictionary:
		if c.WordlistPath == "" {
			return fmt.Errorf("%w: dictionary mode needs a wordlist path", ErrNoAttackMode)
		}
	case ModeBruteForce:
		return ValidateLengthRange(c.MinLength, c.MaxLength)
	case ModeMask:
		if c.Mask == "" {
			return fmt.Errorf("%w: mask mode needs a mask", ErrNoAttackMode)
		}
	case "":
		return ErrNoAttackMode
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrNoAttackMode, c.Mode)
	}
	return nil
}

func ValidateLengthRange(minLength, maxLength int) error {
	if minLength < 1 || maxLength < 1 || minLength > maxLength {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidLengthRange, minLength, maxLength)
	}
	return nil
}

// StatsSnapshot is a point-in-time copy of a running engine's counters.
type StatsSnapshot struct {
	Mode       AttackMode    `json:"mode"`
	Attempts   int64         `json:"attempts"`
	Elapsed    time.Duration `json:"elapsed"`
	Rate       float64       `json:"rate"`
	Total      int64         `json:"total"`
	TotalKnown bool          `json:"totalKnown"`
}

// Progress is the completed fraction in percent, or -1 when the total is unknown.
func (s StatsSnapshot) Progress() float64 {
	if !s.TotalKnown || s.Total <= 0 {
		return -1
	}
	return float64(s.Attempts) / float64(s.Total) * 100
}

// AttackOutcome is the terminal result of one engine run. Candidate is set
// only when Status is OutcomeFound.
type AttackOutcome struct {
	Status    OutcomeStatus `json:"status"`
	Candidate string        `json:"candidate,omitempty"`
	Attempts  int64         `json:"attempts"`
	Elapsed   time.Duration `json:"elapsed"`
}

func (o AttackOutcome) Found() bool {
	return o.Status == OutcomeFound
}

// Rate returns attempts per second over the whole run.
func (o AttackOutcome) Rate() float64 {
	if o.Elapsed <= 0 {
		return 0
	}
	return float64(o.Attempts) / o.Elapsed.Seconds()
}

type ResourceMetrics struct {
	CPUUsage      float64   `json:"cpuUsage"`
	MemoryUsageMB int64     `json:"memoryUsageMb"`
	SystemMemUsed float64   `json:"systemMemUsed"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// CrackResult is the record kept for one run, used by reports and batch mode.
type CrackResult struct {
	ID        string          `json:"id"`
	Config    AttackConfig    `json:"config"`
	Outcome   AttackOutcome   `json:"outcome"`
	Error     string          `json:"error,omitempty"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Resources ResourceMetrics `json:"resources"`
}
