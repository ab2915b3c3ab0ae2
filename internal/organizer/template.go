package organizer

import (
	"regexp"
	"strings"

	"stepvault/internal/textutil"
)

var tokenPattern = regexp.MustCompile(`\{[a-zA-Z]+\}`)

// expandTemplate substitutes {token} placeholders with slugified values.
// Unknown tokens resolve to the empty string. Duplicate path separators
// left behind by empty tokens are collapsed and leading/trailing separators
// trimmed, so "{dance}/{style}/{class}" with no style still yields a clean
// relative path.
func expandTemplate(template string, values map[string]string) string {
	expanded := tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := strings.Trim(token, "{}")
		return textutil.Slugify(values[name])
	})

	segments := strings.Split(expanded, "/")
	kept := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			kept = append(kept, segment)
		}
	}
	return strings.Join(kept, "/")
}
