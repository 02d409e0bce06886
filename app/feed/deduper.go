package feed

// Dedupe collapses items sharing a normalized identity key, keeping the
// first occurrence and preserving first-seen order. Identity collapses, it
// does not combine: later duplicates are discarded whole.
func Dedupe(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	deduped := make([]Item, 0, len(items))

	for _, item := range items {
		key := Key(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, item)
	}

	return deduped
}
