package tracking_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

func intPtr(v int) *int { return &v }

func TestWeeklyCountAgainstGoal(t *testing.T) {
	t.Parallel()
	// Mon/Wed/Fri habit; only Mon and Wed of the first week completed
	habit := &entity.Habit{
		ID:        uuid.New(),
		Schedule:  entity.HabitSchedule{Frequency: entity.FrequencyWeekly, Weekdays: []int{1, 3, 5}},
		Goals:     entity.HabitGoals{Weekly: intPtr(3)},
		IsActive:  true,
		CreatedAt: day("2024-01-01"),
	}
	log := tracking.NewEntryLog(
		completedEntry(habit.ID, day("2024-01-01")),
		completedEntry(habit.ID, day("2024-01-03")),
	)
	friday := day("2024-01-05")
	assert.Equal(t, 2, tracking.WeeklyCount(habit.ID, log, friday))

	progress := tracking.Progress(habit, log, friday)
	assert.Equal(t, 2, progress.Weekly.Count)
	assert.Equal(t, 3, *progress.Weekly.Target)
	assert.False(t, progress.Weekly.Met)
	assert.Nil(t, progress.Daily.Target)
	assert.False(t, progress.Daily.Met)
}

func TestWeeklyCountWindowIsTrailing(t *testing.T) {
	t.Parallel()
	habit := dailyHabit(day("2024-01-01"))
	log := tracking.NewEntryLog(
		completedEntry(habit.ID, day("2024-01-01")),
		completedEntry(habit.ID, day("2024-01-05")),
		completedEntry(habit.ID, day("2024-01-08")),
	)
	// Window Jan 2..Jan 8 excludes Jan 1
	assert.Equal(t, 2, tracking.WeeklyCount(habit.ID, log, day("2024-01-08")))
}

func TestMonthlyCountUsesCalendarMonth(t *testing.T) {
	t.Parallel()
	habit := dailyHabit(day("2024-01-01"))
	log := tracking.NewEntryLog(
		completedEntry(habit.ID, day("2024-01-30")),
		completedEntry(habit.ID, day("2024-01-31")),
		completedEntry(habit.ID, day("2024-02-01")),
	)
	assert.Equal(t, 1, tracking.MonthlyCount(habit.ID, log, day("2024-02-05")))
	assert.Equal(t, 2, tracking.MonthlyCount(habit.ID, log, day("2024-01-31")))
}

func TestCompletionsCountUnscheduledDays(t *testing.T) {
	t.Parallel()
	// Saturday completion counts even though the habit is Mon-only
	habit := &entity.Habit{
		ID:        uuid.New(),
		Schedule:  entity.HabitSchedule{Frequency: entity.FrequencyWeekly, Weekdays: []int{1}},
		IsActive:  true,
		CreatedAt: day("2024-01-01"),
	}
	log := tracking.NewEntryLog(
		completedEntry(habit.ID, day("2024-01-01")),
		completedEntry(habit.ID, day("2024-01-06")),
	)
	assert.Equal(t, 2, tracking.CompletionsSince(habit.ID, log, day("2024-01-01")))
}

func TestCompletionsSinceSkipsIncomplete(t *testing.T) {
	t.Parallel()
	habit := dailyHabit(day("2024-01-01"))
	incomplete := completedEntry(habit.ID, day("2024-01-02"))
	incomplete.Completed = false
	log := tracking.NewEntryLog(
		completedEntry(habit.ID, day("2024-01-01")),
		incomplete,
	)
	assert.Equal(t, 1, tracking.CompletionsSince(habit.ID, log, day("2024-01-01")))
	assert.Zero(t, tracking.CompletionsSince(habit.ID, log, day("2024-01-02")))
}
