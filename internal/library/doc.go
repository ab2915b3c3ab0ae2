// Package library implements the core operations over the vault's media
// items: scanning, in-memory filtering and sorting, and metadata upsert
// with rename synchronization.
//
// Items are a read-only projection rebuilt on every scan; the sidecar files
// are the durable source of truth for everything except the category
// defaults inferred from folder depth. The Editor owns the rename protocol
// that keeps a media file and its sidecar paired under name changes:
// media first, sidecar second, orphan cleanup last, never deleting the
// only surviving copy of the metadata.
package library
