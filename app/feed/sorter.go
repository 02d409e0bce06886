package feed

import (
	"sort"
)

// SortByPublished orders items newest first. Items without a timestamp sort
// last; the sort is stable so equal items keep their first-seen order.
func SortByPublished(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Published, items[j].Published
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
