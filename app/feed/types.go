package feed

import (
	"time"
)

// Item is the canonical, dialect-independent record every feed source is
// converted into before dedup and diffing. Title and URL are required for
// the record to exist; items missing either are dropped during parsing.
type Item struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Source    string     `json:"source"`
	Published *time.Time `json:"published"`
	IsNew     bool       `json:"isNew"`
}

// Snapshot is the persisted output of one feed job run. It replaces the
// prior snapshot wholesale; the previous snapshot is read only to compute
// the next run's isNew flags.
type Snapshot struct {
	Updated time.Time `json:"updated"`
	Items   []Item    `json:"items"`
}

// Keys returns the set of normalized identity keys present in the snapshot.
func (s *Snapshot) Keys() map[string]struct{} {
	keys := make(map[string]struct{}, len(s.Items))
	for _, item := range s.Items {
		keys[Key(item)] = struct{}{}
	}
	return keys
}
