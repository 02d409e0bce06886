package health

import (
	"encoding/json"
	"sort"
)

// Fields is one metric group's flattened field set for a single day.
type Fields map[string]any

// GroupBatch is the contribution of one source endpoint: a named metric
// group mapped over calendar dates. Batches are folded into DayRecords in
// an explicit, declared order.
type GroupBatch struct {
	Group string
	Days  map[string]Fields
}

// MergeOrder is the named priority of metric groups. Later groups override
// earlier ones when they write the same group name for a shared date; the
// order is declared here once rather than implied by call sites.
var MergeOrder = []string{
	GroupSleepScore,
	GroupSleepPeriod,
	GroupReadiness,
	GroupActivity,
	GroupHeartRate,
	GroupSpO2,
}

const (
	GroupSleepScore  = "sleep_score"
	GroupSleepPeriod = "sleep_period"
	GroupReadiness   = "readiness"
	GroupActivity    = "activity"
	GroupHeartRate   = "heart_rate"
	GroupSpO2        = "spo2"
)

// DayRecord is the denormalized per-day entity: exactly one record per
// calendar date, holding the union of all metric groups that mentioned it.
type DayRecord struct {
	Date   string
	groups map[string]Fields
}

func NewDayRecord(date string) *DayRecord {
	return &DayRecord{
		Date:   date,
		groups: make(map[string]Fields),
	}
}

// SetGroup adds or replaces one metric group wholesale. Groups already on
// the record are untouched; the same group from a later batch replaces the
// earlier value entirely.
func (r *DayRecord) SetGroup(group string, fields Fields) {
	r.groups[group] = fields
}

// Group returns the fields a group contributed, or nil.
func (r *DayRecord) Group(group string) Fields {
	return r.groups[group]
}

// MarshalJSON flattens the record to a single object: the date plus every
// group's fields. Key order is deterministic (sorted), so identical inputs
// serialize identically across runs.
func (r *DayRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, 1)
	flat["date"] = r.Date
	for _, fields := range r.groups {
		for k, v := range fields {
			flat[k] = v
		}
	}
	return json.Marshal(flat)
}

// SortBatches orders batches by their group's position in MergeOrder, so
// merge priority follows the declared list no matter how callers assembled
// the slice. Unknown groups sort last, in input order.
func SortBatches(batches []GroupBatch) []GroupBatch {
	rank := make(map[string]int, len(MergeOrder))
	for i, group := range MergeOrder {
		rank[group] = i
	}

	sorted := make([]GroupBatch, len(batches))
	copy(sorted, batches)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iKnown := rank[sorted[i].Group]
		rj, jKnown := rank[sorted[j].Group]
		if !iKnown {
			return false
		}
		if !jKnown {
			return true
		}
		return ri < rj
	})
	return sorted
}

// Merge folds ordered group batches into a mapping from date to DayRecord.
// The first batch mentioning a date creates the record; subsequent batches
// union their groups in. Distinct groups never collide; a shared group name
// is won by the later batch.
func Merge(batches []GroupBatch) map[string]*DayRecord {
	days := make(map[string]*DayRecord)

	for _, batch := range batches {
		for date, fields := range batch.Days {
			if date == "" {
				continue
			}
			record, ok := days[date]
			if !ok {
				record = NewDayRecord(date)
				days[date] = record
			}
			record.SetGroup(batch.Group, fields)
		}
	}

	return days
}

// SortDays returns records in descending date order. Dates are
// YYYY-MM-DD, so lexicographic comparison is chronological.
func SortDays(days map[string]*DayRecord) []*DayRecord {
	sorted := make([]*DayRecord, 0, len(days))
	for _, record := range days {
		sorted = append(sorted, record)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
