package algorithm

import (
	"hashcrack/internal/core/domain"
)

// Mask enumerates candidates described by a hashcat-style mask such as
// "?u?l?l?d". Anything that is not a recognised "?x" token is a literal.
type Mask struct {
	mask       string
	positions  [][]rune
	gen        *product
	total      int64
	totalKnown bool
}

func NewMask(mask string) *Mask {
	m := &Mask{
		mask:      mask,
		positions: ParseMask(mask),
	}
	m.total, m.totalKnown = productSize(m.positions)
	m.gen = newProduct(m.positions)
	return m
}

// ParseMask splits a mask into per-position alphabets, left to right. A '?'
// that is last or followed by an unknown class code stands for itself.
func ParseMask(mask string) [][]rune {
	runes := []rune(mask)
	positions := make([][]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '?' && i+1 < len(runes) {
			if class, ok := domain.MaskClasses[runes[i+1]]; ok {
				positions = append(positions, []rune(class))
				i++
				continue
			}
		}
		positions = append(positions, []rune{runes[i]})
	}
	return positions
}

func (m *Mask) Next() bool {
	return m.gen.advance()
}

func (m *Mask) Candidate() string {
	return m.gen.current()
}

// Positions is the number of characters in every candidate.
func (m *Mask) Positions() int {
	return len(m.positions)
}

func (m *Mask) Err() error { return nil }

func (m *Mask) Total() (int64, bool) {
	return m.total, m.totalKnown
}

func (m *Mask) Name() domain.AttackMode {
	return domain.ModeMask
}

func (m *Mask) Close() error { return nil }
