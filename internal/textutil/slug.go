package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes, so
// accented characters fold to their base letters ("é" -> "e").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts free text into a lowercase, accent-stripped,
// hyphen-separated identifier. Runs of non-alphanumeric characters collapse
// into a single hyphen and leading/trailing hyphens are trimmed. Empty or
// fully non-alphanumeric input yields an empty string.
func Slugify(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if folded, _, err := transform.String(stripMarks, value); err == nil {
		value = folded
	}
	value = strings.ToLower(value)

	var b strings.Builder
	b.Grow(len(value))
	pendingHyphen := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// TrimCounterSuffix removes a trailing collision counter of the form
// " <n>" (a single space followed by digits) from a basename. It returns the
// input unchanged when no counter is present.
func TrimCounterSuffix(base string) string {
	idx := strings.LastIndexByte(base, ' ')
	if idx <= 0 || idx == len(base)-1 {
		return base
	}
	for _, r := range base[idx+1:] {
		if r < '0' || r > '9' {
			return base
		}
	}
	return base[:idx]
}
