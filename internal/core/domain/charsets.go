package domain

import (
	"fmt"
	"sort"
)

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "`~!@#$%^&*()-_=+[{]}\\|;:'\"',<.>/? "
	CharsetLetters = CharsetLower + CharsetUpper
	CharsetAlnum   = CharsetLetters + CharsetDigits
	CharsetAll     = CharsetAlnum + CharsetSpecial
	CharsetBytes   = printableASCII()
)

// namedCharsets are the alphabets selectable by name for brute force.
var namedCharsets = map[string]string{
	"lower":        CharsetLower,
	"upper":        CharsetUpper,
	"digits":       CharsetDigits,
	"special":      CharsetSpecial,
	"alphanumeric": CharsetAlnum,
	"all":          CharsetAll,
}

// MaskClasses maps the character following '?' in a mask to its alphabet.
var MaskClasses = map[rune]string{
	'l': CharsetLower,
	'u': CharsetUpper,
	'd': CharsetDigits,
	's': CharsetSpecial,
	'a': CharsetAll,
	'b': CharsetBytes,
}

// Charset resolves a named charset. A non-empty custom sequence wins over
// the name and is used verbatim, duplicates included.
func Charset(name, custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	set, ok := namedCharsets[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return set, nil
}

// CharsetNames lists the selectable charset names in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(namedCharsets))
	for name := range namedCharsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printableASCII() string {
	b := make([]byte, 0, 0x7f-0x20)
	for c := byte(0x20); c < 0x7f; c++ {
		b = append(b, c)
	}
	return string(b)
}
