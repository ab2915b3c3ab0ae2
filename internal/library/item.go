package library

import (
	"path"
	"time"

	"stepvault/internal/vault"
)

// Item is one scanned media file plus the metadata that describes it.
// The path is the unique key; two items never share a path within one scan
// result.
type Item struct {
	Path      string
	Basename  string
	Extension string // lowercase, without leading dot

	Name        string // display name; basename unless the sidecar overrides it
	Description string
	Dance       string // first folder segment below the scan root, sidecar wins
	Style       string // second segment
	Class       string // third segment

	ThumbnailPath string // sibling image with matching basename, if any

	PlayCount    int
	LastPlayedAt int64 // epoch millis, zero when never played
	AddedAt      time.Time
}

// SidecarPathFor returns the path of the sidecar paired with a media file:
// the same folder, same basename, `.md` extension.
func SidecarPathFor(mediaPath string) string {
	dir, base, _ := vault.SplitPath(mediaPath)
	return path.Join(dir, base+".md")
}
