package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashcrack/internal/core/domain"
)

func TestMask_LowerDigit(t *testing.T) {
	m := NewMask("?l?d")

	got := drain(t, m)
	require.Len(t, got, 260)
	assert.Equal(t, "a0", got[0])
	assert.Equal(t, "a1", got[1])
	assert.Equal(t, "b0", got[10])
	assert.Equal(t, "z9", got[len(got)-1])

	total, ok := m.Total()
	assert.True(t, ok)
	assert.Equal(t, int64(260), total)
}

func TestMask_Start(t *testing.T) {
	tests := []struct {
		name string
		mask string
		want []string
	}{
		{
			name: "Literal prefix",
			mask: "x?d",
			want: []string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8", "x9"},
		},
		{
			name: "Unknown class is literal",
			mask: "?x",
			want: []string{"?x"},
		},
		{
			name: "Trailing question mark",
			mask: "a?",
			want: []string{"a?"},
		},
		{
			name: "Escaped question mark stays literal",
			mask: "??",
			want: []string{"??"},
		},
		{
			name: "Pure literal",
			mask: "abc",
			want: []string{"abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, drain(t, NewMask(tt.mask)))
		})
	}
}

func TestParseMask_ClassSizes(t *testing.T) {
	tests := []struct {
		mask string
		size int
	}{
		{"?l", 26},
		{"?u", 26},
		{"?d", 10},
		{"?s", len(domain.CharsetSpecial)},
		{"?a", 62 + len(domain.CharsetSpecial)},
		{"?b", 95},
	}

	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			positions := ParseMask(tt.mask)
			require.Len(t, positions, 1)
			assert.Len(t, positions[0], tt.size)
		})
	}
}

func TestMask_PrintableBytes(t *testing.T) {
	got := drain(t, NewMask("?b"))
	require.Len(t, got, 95)
	assert.Equal(t, " ", got[0])
	assert.Equal(t, "~", got[len(got)-1])
}

func TestMask_TotalMatchesEnumeration(t *testing.T) {
	m := NewMask("?u?d-?s")
	total, ok := m.Total()
	require.True(t, ok)
	assert.Equal(t, int64(26*10*1*len(domain.CharsetSpecial)), total)
	assert.Len(t, drain(t, m), int(total))
	assert.Equal(t, 4, m.Positions())
}

func TestMask_TotalOverflow(t *testing.T) {
	m := NewMask("?b?b?b?b?b?b?b?b?b?b?b")
	_, ok := m.Total()
	assert.False(t, ok)

	require.True(t, m.Next())
	assert.Equal(t, "           ", m.Candidate())
}

func TestMask_Name(t *testing.T) {
	assert.Equal(t, domain.ModeMask, NewMask("?d").Name())
}
