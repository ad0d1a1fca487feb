package algorithm

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashcrack/internal/core/domain"
)

func drain(t *testing.T, src Source) []string {
	t.Helper()
	var results []string
	for src.Next() {
		results = append(results, src.Candidate())
	}
	require.NoError(t, src.Err())
	return results
}

func TestBruteForce_Order(t *testing.T) {
	tests := []struct {
		name      string
		charset   string
		minLength int
		maxLength int
		want      []string
	}{
		{
			name:      "Single character",
			charset:   "ab",
			minLength: 1,
			maxLength: 1,
			want:      []string{"a", "b"},
		},
		{
			name:      "Two character digits",
			charset:   "12",
			minLength: 2,
			maxLength: 2,
			want:      []string{"11", "12", "21", "22"},
		},
		{
			name:      "Variable length passwords",
			charset:   "ab",
			minLength: 1,
			maxLength: 2,
			want:      []string{"a", "b", "aa", "ab", "ba", "bb"},
		},
		{
			name:      "Charset order drives ordering",
			charset:   "ba",
			minLength: 2,
			maxLength: 2,
			want:      []string{"bb", "ba", "ab", "aa"},
		},
		{
			name:      "Duplicate characters are not collapsed",
			charset:   "aab",
			minLength: 1,
			maxLength: 1,
			want:      []string{"a", "a", "b"},
		},
		{
			name:      "Multibyte charset",
			charset:   "é€",
			minLength: 2,
			maxLength: 2,
			want:      []string{"éé", "é€", "€é", "€€"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBruteForce(tt.charset, tt.minLength, tt.maxLength)
			require.NoError(t, err)

			got := drain(t, b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got passwords = %v, want %v", got, tt.want)
			}

			total, ok := b.Total()
			assert.True(t, ok)
			assert.Equal(t, int64(len(tt.want)), total)
		})
	}
}

func TestBruteForce_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"zero min", 0, 3},
		{"negative max", 1, -1},
		{"min above max", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBruteForce("abc", tt.min, tt.max)
			assert.ErrorIs(t, err, domain.ErrInvalidLengthRange)
		})
	}
}

func TestBruteForce_EmptyCharset(t *testing.T) {
	b, err := NewBruteForce("", 1, 3)
	require.NoError(t, err)

	assert.Empty(t, drain(t, b))
	total, ok := b.Total()
	assert.True(t, ok)
	assert.Zero(t, total)
}

func TestBruteForce_Idempotent(t *testing.T) {
	first, err := NewBruteForce("xyz", 1, 3)
	require.NoError(t, err)
	second, err := NewBruteForce("xyz", 1, 3)
	require.NoError(t, err)

	a := drain(t, first)
	b := drain(t, second)
	assert.Equal(t, a, b)
	assert.Len(t, a, 3+9+27)
}

func TestBruteForce_NotRestartable(t *testing.T) {
	b, err := NewBruteForce("ab", 1, 1)
	require.NoError(t, err)

	assert.Len(t, drain(t, b), 2)
	assert.False(t, b.Next())
}

func TestBruteForce_CombinationsCalculation(t *testing.T) {
	b, err := NewBruteForce(domain.CharsetDigits, 1, 4)
	require.NoError(t, err)

	total, ok := b.Total()
	assert.True(t, ok)
	assert.Equal(t, int64(10+100+1000+10000), total)
}

func TestBruteForce_TotalOverflow(t *testing.T) {
	b, err := NewBruteForce(domain.CharsetAll, 1, 20)
	require.NoError(t, err)

	total, ok := b.Total()
	assert.False(t, ok)
	assert.Equal(t, int64(math.MaxInt64), total)

	// Enumeration is lazy regardless of the size of the space.
	require.True(t, b.Next())
	assert.Equal(t, "a", b.Candidate())
	assert.Equal(t, 1, b.CurrentLength())
}

func TestBruteForce_Name(t *testing.T) {
	b, err := NewBruteForce("ab", 1, 1)
	require.NoError(t, err)
	if b.Name() != domain.ModeBruteForce {
		t.Errorf("Name() = %v, want %v", b.Name(), domain.ModeBruteForce)
	}
}
