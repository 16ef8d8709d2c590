// Package text canonicalizes free-form text before skill matching.
package text

import "strings"

// Normalize lowercases raw, turns every character outside [a-z0-9+] into a
// separator, collapses separator runs into one space and trims the edges.
//
// Newlines, tabs and any other whitespace are separators like punctuation.
// Non-ASCII letters are separators too, so "café" becomes "caf". The result is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lower))

	pendingSpace := false
	for _, r := range lower {
		if !isKept(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// Tokens splits normalized text into its space-separated tokens.
func Tokens(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, " ")
}

// IsNormalized reports whether s already satisfies the Normalize output invariant.
func IsNormalized(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if i == 0 || i == len(s)-1 || s[i-1] == ' ' {
				return false
			}
			continue
		}
		if !isKept(rune(c)) {
			return false
		}
	}
	return true
}

func isKept(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+'
}
