package algorithm

import (
	"hashcrack/internal/core/domain"
)

// BruteForce enumerates every string of MinLength..MaxLength characters over
// a charset, shortest first. Repeated characters in the charset are kept,
// so they yield repeated candidates.
type BruteForce struct {
	charset    []rune
	minLength  int
	maxLength  int
	currentLen int
	gen        *product
	total      int64
	totalKnown bool
}

func NewBruteForce(charset string, minLength, maxLength int) (*BruteForce, error) {
	if err := domain.ValidateLengthRange(minLength, maxLength); err != nil {
		return nil, err
	}
	b := &BruteForce{
		charset:    []rune(charset),
		minLength:  minLength,
		maxLength:  maxLength,
		currentLen: minLength,
	}
	b.calculateTotalCombinations()
	b.gen = b.lengthProduct(b.currentLen)
	return b, nil
}

func (b *BruteForce) lengthProduct(length int) *product {
	sets := make([][]rune, length)
	for i := range sets {
		sets[i] = b.charset
	}
	return newProduct(sets)
}

func (b *BruteForce) calculateTotalCombinations() {
	b.total, b.totalKnown = 0, true
	for length := b.minLength; length <= b.maxLength; length++ {
		perLength := int64(1)
		for i := 0; i < length && b.totalKnown; i++ {
			perLength, b.totalKnown = mulInt64(perLength, int64(len(b.charset)))
		}
		if b.totalKnown {
			b.total, b.totalKnown = addInt64(b.total, perLength)
		}
		if !b.totalKnown {
			return
		}
	}
}

func (b *BruteForce) Next() bool {
	for {
		if b.gen.advance() {
			return true
		}
		if b.currentLen >= b.maxLength {
			return false
		}
		b.currentLen++
		b.gen = b.lengthProduct(b.currentLen)
	}
}

func (b *BruteForce) Candidate() string {
	return b.gen.current()
}

// CurrentLength is the length of the candidates being produced.
func (b *BruteForce) CurrentLength() int {
	return b.currentLen
}

func (b *BruteForce) Err() error { return nil }

func (b *BruteForce) Total() (int64, bool) {
	return b.total, b.totalKnown
}

func (b *BruteForce) Name() domain.AttackMode {
	return domain.ModeBruteForce
}

func (b *BruteForce) Close() error { return nil }
