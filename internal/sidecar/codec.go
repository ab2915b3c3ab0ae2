package sidecar

import "strings"

const delimiter = "---"

// Field is one `key: value` frontmatter entry. Values are kept as raw
// strings so unrecognized fields round-trip verbatim.
type Field struct {
	Key   string
	Value string
}

// Document is the lossless in-memory form of a sidecar file: ordered
// frontmatter fields plus the free-text body below the block.
type Document struct {
	fields []Field
	index  map[string]int
	Body   string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: map[string]int{}}
}

// Parse decodes a sidecar text blob. A document has frontmatter iff it
// begins with a line consisting of exactly "---" and a matching closing
// line exists; otherwise the entire content is body. Between the
// delimiters, each `key: value` line becomes one field with both sides
// trimmed; lines that do not match are dropped.
func Parse(text string) *Document {
	doc := NewDocument()
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || lines[0] != delimiter {
		doc.Body = normalized
		return doc
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		doc.Body = normalized
		return doc
	}

	for _, line := range lines[1:closing] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sep := strings.Index(line, ":")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		if key == "" {
			continue
		}
		doc.Set(key, strings.TrimSpace(line[sep+1:]))
	}

	body := lines[closing+1:]
	// Serialize emits one blank line between the block and the body; drop
	// exactly that line so bodies round-trip unchanged.
	if len(body) > 0 && body[0] == "" {
		body = body[1:]
	}
	doc.Body = strings.Join(body, "\n")
	return doc
}

// Serialize encodes the document back to sidecar text: opening delimiter,
// one `key: value` line per field in insertion order, closing delimiter, a
// blank line, then the body.
func (d *Document) Serialize() string {
	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteByte('\n')
	for _, field := range d.fields {
		b.WriteString(field.Key)
		b.WriteString(": ")
		b.WriteString(field.Value)
		b.WriteByte('\n')
	}
	b.WriteString(delimiter)
	b.WriteString("\n\n")
	b.WriteString(d.Body)
	return b.String()
}

// Get returns the raw value for key.
func (d *Document) Get(key string) (string, bool) {
	if d.index == nil {
		return "", false
	}
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.fields[i].Value, true
}

// Set stores a value, keeping the field's original position when the key is
// already present and appending otherwise. Preserving prior insertion order
// keeps rewrite diffs minimal.
func (d *Document) Set(key, value string) {
	if d.index == nil {
		d.index = map[string]int{}
	}
	if i, ok := d.index[key]; ok {
		d.fields[i].Value = value
		return
	}
	d.index[key] = len(d.fields)
	d.fields = append(d.fields, Field{Key: key, Value: value})
}

// Delete removes a field if present.
func (d *Document) Delete(key string) {
	i, ok := d.index[key]
	if !ok {
		return
	}
	d.fields = append(d.fields[:i], d.fields[i+1:]...)
	delete(d.index, key)
	for k, idx := range d.index {
		if idx > i {
			d.index[k] = idx - 1
		}
	}
}

// Fields returns the ordered field list.
func (d *Document) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Len returns the number of fields.
func (d *Document) Len() int { return len(d.fields) }
