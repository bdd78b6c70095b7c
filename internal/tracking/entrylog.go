package tracking

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/youthlab/habitrack/pkg/entity"
)

type entryKey struct {
	habitID uuid.UUID
	day     time.Time
}

// EntryLog is an in-memory snapshot of habit entries with one slot per
// (habitID, date). Persistence belongs to the repository layer; the log
// only holds data for the pure computations to read.
type EntryLog struct {
	entries map[entryKey]entity.HabitEntry
}

func NewEntryLog(entries ...entity.HabitEntry) *EntryLog {
	log := &EntryLog{entries: make(map[entryKey]entity.HabitEntry, len(entries))}
	for _, e := range entries {
		log.Upsert(e)
	}
	return log
}

// Upsert stores the entry under its (habitID, date) key. On conflict the
// entry with the greater LastModified wins; a tie keeps the stored one.
func (l *EntryLog) Upsert(e entity.HabitEntry) {
	key := entryKey{habitID: e.HabitID, day: DayOf(e.Date)}
	if old, ok := l.entries[key]; ok && !e.LastModified.After(old.LastModified) {
		return
	}
	e.Date = key.day
	l.entries[key] = e
}

func (l *EntryLog) Get(habitID uuid.UUID, date time.Time) (entity.HabitEntry, bool) {
	e, ok := l.entries[entryKey{habitID: habitID, day: DayOf(date)}]
	return e, ok
}

func (l *EntryLog) IsCompleted(habitID uuid.UUID, date time.Time) bool {
	e, ok := l.Get(habitID, date)
	return ok && e.Completed
}

// EntriesFor returns the habit's entries with from <= date <= to,
// ordered by date.
func (l *EntryLog) EntriesFor(habitID uuid.UUID, from, to time.Time) []entity.HabitEntry {
	fromDay, toDay := DayOf(from), DayOf(to)
	result := make([]entity.HabitEntry, 0)
	for key, e := range l.entries {
		if key.habitID != habitID {
			continue
		}
		if key.day.Before(fromDay) || key.day.After(toDay) {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// LatestDate returns the habit's most recent entry date, if any.
func (l *EntryLog) LatestDate(habitID uuid.UUID) (time.Time, bool) {
	var latest time.Time
	found := false
	for key := range l.entries {
		if key.habitID != habitID {
			continue
		}
		if !found || key.day.After(latest) {
			latest = key.day
			found = true
		}
	}
	return latest, found
}

func (l *EntryLog) Len() int {
	return len(l.entries)
}
