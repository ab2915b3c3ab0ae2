// Package vault models the hierarchical file tree that acts as stepvault's
// sole durable store.
//
// The Vault interface is the capability surface the core operations work
// against: plain create/read/write/rename/delete by vault-relative,
// slash-separated path. Dir is the production implementation backed by a
// directory on disk; tests use it against temp directories. There are no
// locks or transactions here; callers sequence operations (rename media,
// rename sidecar, write sidecar) so a crash mid-sequence leaves a
// detectable state rather than silent data loss.
package vault
