package feed

// MarkNew sets each item's IsNew flag from a pure membership test against
// the previous snapshot's key set: true iff the item's normalized key is
// absent. No field-level comparison happens; items that disappeared from
// the sources are simply absent from the new snapshot. An empty previous
// key set (first run, missing or corrupt snapshot) marks everything new.
func MarkNew(items []Item, previousKeys map[string]struct{}) {
	for i := range items {
		_, existed := previousKeys[Key(items[i])]
		items[i].IsNew = !existed
	}
}
