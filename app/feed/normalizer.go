package feed

import (
	"golang.org/x/text/cases"
)

// Key derives the stable, case-insensitive identity key for an item: the
// case-folded URL, falling back to the case-folded title when the URL is
// absent. Dedup and cross-run diffing both use this key, so two runs
// compute the same key for the same real-world item regardless of casing.
// URLs are not otherwise canonicalized (trailing slashes and query
// parameters are preserved).
func Key(item Item) string {
	folder := cases.Fold()
	if item.URL != "" {
		return folder.String(item.URL)
	}
	return folder.String(item.Title)
}
