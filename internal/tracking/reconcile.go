package tracking

import (
	"sort"

	"github.com/youthlab/habitrack/pkg/entity"
)

type ReconcileResult struct {
	// Merged holds exactly one entry for every (habitID, date) key seen
	// on either side, ordered by (habitID, date).
	Merged []entity.HabitEntry
	// PendingUpload lists the local entries the remote side has never
	// seen. They are also part of Merged.
	PendingUpload []entity.HabitEntry
}

// Reconcile merges a local and a remote entry snapshot. Keys present
// only locally are marked for upload; keys present only remotely are
// adopted; keys present on both sides keep the copy with the greater
// LastModified, ties keep the remote copy so distributed writers
// converge. Reconcile(merged, merged) yields merged and no uploads.
func Reconcile(local, remote []entity.HabitEntry) ReconcileResult {
	remoteByKey := make(map[entryKey]entity.HabitEntry, len(remote))
	for _, e := range remote {
		remoteByKey[keyOf(e)] = e
	}

	merged := make(map[entryKey]entity.HabitEntry, len(local)+len(remote))
	pending := make([]entity.HabitEntry, 0)
	for _, e := range local {
		key := keyOf(e)
		r, onRemote := remoteByKey[key]
		switch {
		case !onRemote:
			merged[key] = e
			pending = append(pending, e)
		case e.LastModified.After(r.LastModified):
			merged[key] = e
			pending = append(pending, e)
		default:
			merged[key] = r
		}
	}
	for key, e := range remoteByKey {
		if _, ok := merged[key]; !ok {
			merged[key] = e
		}
	}

	result := ReconcileResult{
		Merged:        make([]entity.HabitEntry, 0, len(merged)),
		PendingUpload: pending,
	}
	for _, e := range merged {
		result.Merged = append(result.Merged, e)
	}
	sortEntries(result.Merged)
	sortEntries(result.PendingUpload)
	return result
}

func keyOf(e entity.HabitEntry) entryKey {
	return entryKey{habitID: e.HabitID, day: DayOf(e.Date)}
}

func sortEntries(entries []entity.HabitEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].HabitID != entries[j].HabitID {
			return entries[i].HabitID.String() < entries[j].HabitID.String()
		}
		return DayOf(entries[i].Date).Before(DayOf(entries[j].Date))
	})
}
