package random

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		length  int
		wantLen int
	}{
		{"ascii", "abc", 16, 16},
		{"multibyte", "é€", 5, 5},
		{"zero length", "abc", 0, 0},
		{"empty charset", "", 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateRandomString(tt.charset, tt.length)
			assert.Equal(t, tt.wantLen, utf8.RuneCountInString(got))
			for _, r := range got {
				assert.True(t, strings.ContainsRune(tt.charset, r))
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.Regexp(t, "^[0-9a-f]{12}$", id)
}
