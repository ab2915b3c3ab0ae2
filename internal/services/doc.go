// Package services defines shared utilities consumed by the library
// operations (scan, upsert, organize) and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp vault paths, operation names, and
//     correlation identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (not found vs validation vs transient I/O) uniform
//     across operations.
//
// Use these helpers when wiring new operations so error handling and
// observability stay consistent.
package services
