package sidecar

import (
	"math"
	"strconv"
	"strings"

	"stepvault/internal/textutil"
)

// Recognized frontmatter keys. style/danceStyle and class/classLevel are
// alias pairs storing one semantic value each; the newer alias wins on read
// and both are written on every update so either spelling reads back
// correctly from manually edited files.
const (
	KeyStepName     = "stepName"
	KeyDescription  = "description"
	KeyDance        = "dance"
	KeyStyle        = "style"
	KeyDanceStyle   = "danceStyle"
	KeyClass        = "class"
	KeyClassLevel   = "classLevel"
	KeyPlayCount    = "playCount"
	KeyLastPlayedAt = "lastPlayedAt"
)

// Record is the typed projection of a sidecar's recognized fields.
// PlayCount is clamped non-negative; LastPlayedAt is epoch milliseconds,
// zero when never played.
type Record struct {
	StepName     string
	Description  string
	Dance        string
	Style        string
	Class        string
	PlayCount    int
	LastPlayedAt int64
}

// RecordOf projects the recognized fields out of a document. Unparseable or
// non-finite numeric values are ignored rather than erroring, so a manually
// damaged counter never fails a scan.
func RecordOf(doc *Document) Record {
	rec := Record{
		StepName:    trimmedField(doc, KeyStepName),
		Description: trimmedField(doc, KeyDescription),
		Dance:       trimmedField(doc, KeyDance),
		Style:       aliasedField(doc, KeyDanceStyle, KeyStyle),
		Class:       aliasedField(doc, KeyClassLevel, KeyClass),
	}
	if n, ok := numericField(doc, KeyPlayCount); ok {
		count := int(math.Floor(n))
		if count < 0 {
			count = 0
		}
		rec.PlayCount = count
	}
	if n, ok := numericField(doc, KeyLastPlayedAt); ok {
		rec.LastPlayedAt = int64(n)
	}
	return rec
}

// SetStyle writes the style value under both alias keys.
func SetStyle(doc *Document, value string) {
	doc.Set(KeyStyle, value)
	doc.Set(KeyDanceStyle, value)
}

// SetClass writes the class value under both alias keys.
func SetClass(doc *Document, value string) {
	doc.Set(KeyClass, value)
	doc.Set(KeyClassLevel, value)
}

// SetPlayCount writes the play counter as a bare decimal.
func SetPlayCount(doc *Document, count int) {
	if count < 0 {
		count = 0
	}
	doc.Set(KeyPlayCount, strconv.Itoa(count))
}

// SetLastPlayedAt writes the last-played timestamp (epoch millis) as a bare
// decimal.
func SetLastPlayedAt(doc *Document, millis int64) {
	doc.Set(KeyLastPlayedAt, strconv.FormatInt(millis, 10))
}

// DocumentOf builds a fresh sidecar document for a record, writing every
// non-empty field (both alias spellings included) and the managed hashtag
// line. The organizer uses it when staging a file at a new destination.
func DocumentOf(rec Record) *Document {
	doc := NewDocument()
	if rec.StepName != "" {
		doc.Set(KeyStepName, rec.StepName)
	}
	if rec.Description != "" {
		doc.Set(KeyDescription, rec.Description)
	}
	if rec.Dance != "" {
		doc.Set(KeyDance, rec.Dance)
	}
	if rec.Style != "" {
		SetStyle(doc, rec.Style)
	}
	if rec.Class != "" {
		SetClass(doc, rec.Class)
	}
	if rec.PlayCount > 0 {
		SetPlayCount(doc, rec.PlayCount)
	}
	if rec.LastPlayedAt > 0 {
		SetLastPlayedAt(doc, rec.LastPlayedAt)
	}
	doc.Body = ApplyTagLine(doc.Body, rec.Dance)
	return doc
}

// TagLine renders the managed first body line: the library tag plus, when a
// dance is set, its slugified hashtag.
func TagLine(dance string) string {
	line := "#DanceLibrary"
	if slug := textutil.Slugify(dance); slug != "" {
		line += " #" + slug
	}
	return line
}

// ApplyTagLine replaces the first line of the body with the managed hashtag
// line, leaving the rest of the body untouched.
func ApplyTagLine(body, dance string) string {
	line := TagLine(dance)
	if body == "" {
		return line + "\n"
	}
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		return line + body[idx:]
	}
	return line
}

func trimmedField(doc *Document, key string) string {
	value, _ := doc.Get(key)
	return strings.TrimSpace(value)
}

// aliasedField resolves an alias pair, preferring the newer key when it
// carries a non-empty value.
func aliasedField(doc *Document, newer, older string) string {
	if value := trimmedField(doc, newer); value != "" {
		return value
	}
	return trimmedField(doc, older)
}

// numericField parses a field as a number when the value is entirely
// numeric and finite. Anything else is reported absent; the raw string
// stays in the document untouched either way.
func numericField(doc *Document, key string) (float64, bool) {
	raw, ok := doc.Get(key)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
