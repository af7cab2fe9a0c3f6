package schema

import "strings"

// NormalizeID canonicalises a record identifier for cross-file matching:
// trimmed, lower-cased and stripped of everything outside [a-z0-9].
// An empty result is never a valid key.
func NormalizeID(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Digits keeps only the ASCII digits of s. Phone numbers are compared this way.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
