package domain

type HashAlgorithm string
type AttackMode string
type EngineState string
type OutcomeStatus string

const (
	// Hash algorithms
	HashMD5     HashAlgorithm = "md5"
	HashSHA1    HashAlgorithm = "sha1"
	HashSHA224  HashAlgorithm = "sha224"
	HashSHA256  HashAlgorithm = "sha256"
	HashSHA384  HashAlgorithm = "sha384"
	HashSHA512  HashAlgorithm = "sha512"
	HashBlake2b HashAlgorithm = "blake2b"
	HashBlake2s HashAlgorithm = "blake2s"
	HashSHA3256 HashAlgorithm = "sha3_256"
	HashSHA3512 HashAlgorithm = "sha3_512"

	// Attack modes
	ModeDictionary AttackMode = "dictionary"
	ModeBruteForce AttackMode = "brute_force"
	ModeMask       AttackMode = "mask"

	// Engine states
	StateIdle      EngineState = "IDLE"
	StateRunning   EngineState = "RUNNING"
	StateFound     EngineState = "FOUND"
	StateExhausted EngineState = "EXHAUSTED"
	StateCancelled EngineState = "CANCELLED"
	StateFailed    EngineState = "FAILED"

	// Outcome statuses
	OutcomeFound     OutcomeStatus = "found"
	OutcomeExhausted OutcomeStatus = "exhausted"
	OutcomeCancelled OutcomeStatus = "cancelled"
	// OutcomeFailed ends a run aborted by a source read error.
	OutcomeFailed OutcomeStatus = "failed"
)

const (
	DefaultAlgorithm = HashMD5
	DefaultCharset   = "all"
	DefaultMinLength = 1
	DefaultMaxLength = 8

	// Progress cadence. Dictionary sources are usually orders of magnitude
	// smaller than combinatorial ones.
	DictionaryReportInterval    int64 = 10_000
	CombinatorialReportInterval int64 = 100_000
)

// Terminal reports whether no further transition is possible from s.
func (s EngineState) Terminal() bool {
	switch s {
	case StateFound, StateExhausted, StateCancelled, StateFailed:
		return true
	}
	return false
}

// Combinatorial reports whether the mode enumerates a generated search space.
func (m AttackMode) Combinatorial() bool {
	return m == ModeBruteForce || m == ModeMask
}

// ReportInterval is the default number of attempts between stats reports.
func (m AttackMode) ReportInterval() int64 {
	if m.Combinatorial() {
		return CombinatorialReportInterval
	}
	return DictionaryReportInterval
}

type CrackingError string

const (
	ErrUnsupportedAlgorithm CrackingError = "unsupported hash algorithm"
	ErrSourceNotFound       CrackingError = "wordlist not found"
	ErrSourceRead           CrackingError = "wordlist read error"
	ErrInvalidLengthRange   CrackingError = "invalid length range"
	ErrNoAttackMode         CrackingError = "no attack mode selected"
	ErrMultipleAttackModes  CrackingError = "more than one attack mode selected"
	ErrEmptyTarget          CrackingError = "target digest is empty"
	ErrUnknownCharset       CrackingError = "unknown charset"
	ErrEngineReused         CrackingError = "engine already ran"
)

func (e CrackingError) Error() string {
	return string(e)
}
