package sanitizer

import (
	"strings"
	"unicode"
)

// IsBlank reports whether r is whitespace in the broad sense browsers use:
// ASCII spaces, vertical tab, every Unicode separator and the byte-order mark.
func IsBlank(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

func TrimBlank(s string) string {
	return strings.TrimFunc(s, IsBlank)
}

func TrimAndNormalize(s string) string {
	s = TrimBlank(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if IsBlank(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}
