package random

import (
	"math/rand"
)

const hexDigits = "0123456789abcdef"

// GenerateRandomString draws length runes from charset. It is for test data
// and benchmarks, not for secrets.
func GenerateRandomString(charset string, length int) string {
	runes := []rune(charset)
	if length <= 0 || len(runes) == 0 {
		return ""
	}

	result := make([]rune, length)
	for i := range result {
		result[i] = runes[rand.Intn(len(runes))]
	}
	return string(result)
}

// GenerateID returns a short random hex identifier for runs.
func GenerateID() string {
	return GenerateRandomString(hexDigits, 12)
}
