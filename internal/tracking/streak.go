package tracking

import (
	"time"

	"github.com/youthlab/habitrack/pkg/entity"
)

// CurrentStreak counts consecutive completed due days ending at or
// before asOf. Non-due days are skipped, they neither extend nor break
// the run. A due day without a completed entry breaks the walk, so a
// habit whose most recent due day is incomplete has a streak of 0.
func CurrentStreak(habit *entity.Habit, log *EntryLog, asOf time.Time) int {
	created := DayOf(habit.CreatedAt)
	streak := 0
	for day := DayOf(asOf); !day.Before(created); day = day.AddDate(0, 0, -1) {
		if !IsDue(habit, day) {
			continue
		}
		if !log.IsCompleted(habit.ID, day) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak scans all due days from the habit's creation to its
// latest entry and returns the longest run of completed due days. A
// habit with no entries has a longest streak of 0.
func LongestStreak(habit *entity.Habit, log *EntryLog) int {
	latest, ok := log.LatestDate(habit.ID)
	if !ok {
		return 0
	}
	created := DayOf(habit.CreatedAt)
	longest, run := 0, 0
	for day := created; !day.After(latest); day = day.AddDate(0, 0, 1) {
		if !IsDue(habit, day) {
			continue
		}
		if log.IsCompleted(habit.ID, day) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}
