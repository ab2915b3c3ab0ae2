// Package sidecar implements the frontmatter codec for the `.md` metadata
// files that sit beside each media file.
//
// A sidecar is plaintext UTF-8: a `---`-delimited block of `key: value`
// lines, a blank line, then a free-form body whose first line is the managed
// hashtag line. Document is the lossless representation — recognized and
// unrecognized fields alike survive a parse/serialize round trip in
// insertion order, and the body is preserved verbatim. Record is the typed
// projection of the recognized fields, including the legacy alias pairs
// (style/danceStyle, class/classLevel) that are kept in sync on write.
//
// The codec is deliberately not a YAML parser: a minimal frontmatter subset
// suffices, and malformed key lines are silently dropped rather than
// failing the whole file.
package sidecar
