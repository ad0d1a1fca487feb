// Package digest holds the closed set of unsalted digest algorithms a target
// can be attacked with.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"hashcrack/internal/core/domain"
	"hashcrack/internal/port"
)

// CommonHexLengths are the digest lengths of every registered algorithm.
var CommonHexLengths = []int{32, 40, 56, 64, 96, 128}

type sumFunc func(data []byte) []byte

// Provider is a resolved algorithm. The zero value is not usable.
type Provider struct {
	algorithm domain.HashAlgorithm
	size      int
	sum       sumFunc
}

var registry = map[domain.HashAlgorithm]Provider{
	domain.HashMD5: {domain.HashMD5, md5.Size, func(b []byte) []byte {
		s := md5.Sum(b)
		return s[:]
	}},
	domain.HashSHA1: {domain.HashSHA1, sha1.Size, func(b []byte) []byte {
		s := sha1.Sum(b)
		return s[:]
	}},
	domain.HashSHA224: {domain.HashSHA224, sha256.Size224, func(b []byte) []byte {
		s := sha256.Sum224(b)
		return s[:]
	}},
	domain.HashSHA256: {domain.HashSHA256, sha256.Size, func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}},
	domain.HashSHA384: {domain.HashSHA384, sha512.Size384, func(b []byte) []byte {
		s := sha512.Sum384(b)
		return s[:]
	}},
	domain.HashSHA512: {domain.HashSHA512, sha512.Size, func(b []byte) []byte {
		s := sha512.Sum512(b)
		return s[:]
	}},
	domain.HashBlake2b: {domain.HashBlake2b, blake2b.Size, func(b []byte) []byte {
		s := blake2b.Sum512(b)
		return s[:]
	}},
	domain.HashBlake2s: {domain.HashBlake2s, blake2s.Size, func(b []byte) []byte {
		s := blake2s.Sum256(b)
		return s[:]
	}},
	domain.HashSHA3256: {domain.HashSHA3256, 32, func(b []byte) []byte {
		s := sha3.Sum256(b)
		return s[:]
	}},
	domain.HashSHA3512: {domain.HashSHA3512, 64, func(b []byte) []byte {
		s := sha3.Sum512(b)
		return s[:]
	}},
}

// Lookup resolves an algorithm identifier.
func Lookup(algorithm domain.HashAlgorithm) (Provider, error) {
	p, ok := registry[algorithm]
	if !ok {
		return Provider{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedAlgorithm, algorithm)
	}
	return p, nil
}

// Compute hashes text with the named algorithm and returns lowercase hex.
func Compute(text string, algorithm domain.HashAlgorithm) (string, error) {
	p, err := Lookup(algorithm)
	if err != nil {
		return "", err
	}
	return p.Digest(text), nil
}

// Algorithms lists the registered identifiers in sorted order.
func Algorithms() []domain.HashAlgorithm {
	out := make([]domain.HashAlgorithm, 0, len(registry))
	for alg := range registry {
		out = append(out, alg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LooksLikeDigest reports whether n is the hex length of any registered algorithm.
func LooksLikeDigest(n int) bool {
	for _, l := range CommonHexLengths {
		if n == l {
			return true
		}
	}
	return false
}

func (p Provider) Algorithm() domain.HashAlgorithm { return p.algorithm }

// HexLength is the number of hex characters Digest returns.
func (p Provider) HexLength() int { return p.size * 2 }

func (p Provider) Digest(text string) string {
	return hex.EncodeToString(p.sum([]byte(text)))
}

// Registry exposes the package registry through port.DigestProvider.
type Registry struct{}

func (Registry) Hasher(algorithm domain.HashAlgorithm) (port.Hasher, error) {
	p, err := Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return p, nil
}
