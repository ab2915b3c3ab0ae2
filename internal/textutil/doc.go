// Package textutil provides the text normalization helpers shared by the
// scanner, the upsert path, and the organizer.
//
// The primary use case is slugging: turning a free-text step or dance name
// into a normalized, accent-stripped, hyphen-separated identifier that is
// safe to use as a filename or path segment. The same slug rules feed the
// managed hashtag line inside sidecar files so that display names, file
// names, and tags stay derivable from one another.
package textutil
