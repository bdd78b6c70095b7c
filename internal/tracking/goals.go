package tracking

import (
	"time"

	"github.com/google/uuid"
	"github.com/youthlab/habitrack/pkg/entity"
)

// Counting is permissive: a completed entry counts toward goals whether
// or not its day was due, since users may log unscheduled completions.

// CompletionsBetween counts completed entries with from <= date <= to.
func CompletionsBetween(habitID uuid.UUID, log *EntryLog, from, to time.Time) int {
	count := 0
	for _, e := range log.EntriesFor(habitID, from, to) {
		if e.Completed {
			count++
		}
	}
	return count
}

// CompletionsSince counts completed entries on or after start.
func CompletionsSince(habitID uuid.UUID, log *EntryLog, start time.Time) int {
	count := 0
	for key, e := range log.entries {
		if key.habitID == habitID && e.Completed && !key.day.Before(DayOf(start)) {
			count++
		}
	}
	return count
}

func DailyCount(habitID uuid.UUID, log *EntryLog, asOf time.Time) int {
	return CompletionsBetween(habitID, log, asOf, asOf)
}

// WeeklyCount counts completions in the trailing 7-day window ending at
// asOf.
func WeeklyCount(habitID uuid.UUID, log *EntryLog, asOf time.Time) int {
	day := DayOf(asOf)
	return CompletionsBetween(habitID, log, day.AddDate(0, 0, -6), day)
}

// MonthlyCount counts completions in asOf's calendar month up to asOf.
func MonthlyCount(habitID uuid.UUID, log *EntryLog, asOf time.Time) int {
	day := DayOf(asOf)
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return CompletionsBetween(habitID, log, monthStart, day)
}

type PeriodProgress struct {
	Count  int  `json:"count"`
	Target *int `json:"target,omitempty"`
	Met    bool `json:"met"`
}

type GoalProgress struct {
	Daily   PeriodProgress `json:"daily"`
	Weekly  PeriodProgress `json:"weekly"`
	Monthly PeriodProgress `json:"monthly"`
}

// Progress pairs the habit's period counts with its configured targets.
// Periods without a configured goal carry a nil target and are never met.
func Progress(habit *entity.Habit, log *EntryLog, asOf time.Time) GoalProgress {
	return GoalProgress{
		Daily:   periodProgress(DailyCount(habit.ID, log, asOf), habit.Goals.Daily),
		Weekly:  periodProgress(WeeklyCount(habit.ID, log, asOf), habit.Goals.Weekly),
		Monthly: periodProgress(MonthlyCount(habit.ID, log, asOf), habit.Goals.Monthly),
	}
}

func periodProgress(count int, target *int) PeriodProgress {
	return PeriodProgress{
		Count:  count,
		Target: target,
		Met:    target != nil && count >= *target,
	}
}
