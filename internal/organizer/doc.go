// Package organizer stages media files into the library folder using the
// configured folder and filename templates.
//
// Destinations are derived from sidecar metadata (basename when none),
// with every substituted token slugified, missing folders created, and
// name collisions resolved through numeric suffixes. The binary payload is
// copied rather than moved, and a fresh sidecar is written at the
// destination only when one does not already exist there. Import performs
// the same staging for files arriving from outside the vault.
package organizer
