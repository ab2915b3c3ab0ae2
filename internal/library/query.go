package library

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering applied by Query.
type SortMode string

const (
	// SortAZ orders by display name ascending.
	SortAZ SortMode = "az"
	// SortRecent orders by added time descending, ties broken by name
	// descending (observed legacy behavior, kept for compatibility with
	// existing sidecar-driven ordering).
	SortRecent SortMode = "recent"
	// SortMostPlayed orders by play count descending, ties broken by name
	// ascending.
	SortMostPlayed SortMode = "mostPlayed"
)

// ParseSortMode maps user input to a SortMode, defaulting to az.
func ParseSortMode(value string) SortMode {
	switch SortMode(strings.TrimSpace(value)) {
	case SortRecent:
		return SortRecent
	case SortMostPlayed:
		return SortMostPlayed
	default:
		return SortAZ
	}
}

// Filters restricts items per facet. An empty slice means the facet is
// unconstrained; a non-empty slice admits only items whose facet is set and
// contained in it.
type Filters struct {
	Dances  []string
	Styles  []string
	Classes []string
}

// Query is the pure in-memory search over scanned items: case-insensitive
// substring search, facet filters, and a total, deterministic ordering.
// The input slice is never mutated.
func Query(items []Item, search string, filters Filters, mode SortMode) []Item {
	search = strings.ToLower(strings.TrimSpace(search))

	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(searchText(item), search) {
			continue
		}
		if !facetAllows(filters.Dances, item.Dance) {
			continue
		}
		if !facetAllows(filters.Styles, item.Style) {
			continue
		}
		if !facetAllows(filters.Classes, item.Class) {
			continue
		}
		matched = append(matched, item)
	}

	collator := collate.New(language.English, collate.IgnoreCase)
	byName := func(a, b Item) int { return collator.CompareString(a.Name, b.Name) }

	switch mode {
	case SortRecent:
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := matched[i], matched[j]
			if !a.AddedAt.Equal(b.AddedAt) {
				return a.AddedAt.After(b.AddedAt)
			}
			return byName(a, b) > 0
		})
	case SortMostPlayed:
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := matched[i], matched[j]
			if a.PlayCount != b.PlayCount {
				return a.PlayCount > b.PlayCount
			}
			return byName(a, b) < 0
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return byName(matched[i], matched[j]) < 0
		})
	}

	return matched
}

func searchText(item Item) string {
	return strings.ToLower(strings.Join([]string{
		item.Name,
		item.Description,
		item.Dance,
		item.Style,
		item.Class,
	}, " "))
}

func facetAllows(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	for _, candidate := range allowed {
		if candidate == value {
			return true
		}
	}
	return false
}
