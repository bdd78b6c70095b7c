package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/youthlab/habitrack/internal/repository"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

const reminderWindow = 15 * time.Minute

type ReminderService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
	notifier    NotifierI
}

func NewReminderService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI, notifier NotifierI) *ReminderService {
	if habitsRepo == nil || entriesRepo == nil || notifier == nil {
		log.Fatal("on reminder service provided nil dependencies")
	}
	return &ReminderService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
		notifier:    notifier,
	}
}

// EvaluateReminders notifies about every active habit that is due
// today, has no completed entry for today and whose time of day falls
// within fifteen minutes of now. Archived habits never notify.
func (rs *ReminderService) EvaluateReminders(ctx context.Context, uid uuid.UUID, now time.Time) error {
	habits, err := rs.userHabits(ctx, uid)
	if err != nil {
		return err
	}
	today := tracking.DayOf(now)
	for _, habit := range habits {
		if !habit.IsActive || habit.Schedule.TimeOfDay == "" {
			continue
		}
		if !tracking.IsDue(habit, today) {
			continue
		}
		if !inReminderWindow(habit.Schedule.TimeOfDay, now) {
			continue
		}
		completed, err := rs.completedToday(ctx, habit.ID, today)
		if err != nil {
			return err
		}
		if completed {
			continue
		}
		err = rs.notifier.HabitReminder(ctx, habit.ID, habit.Name)
		if err != nil {
			return errors.New("notifier error: " + err.Error())
		}
	}
	return nil
}

// DailySummary sends the completed/total digest for today's due habits
// along with the user's best current streak.
func (rs *ReminderService) DailySummary(ctx context.Context, uid uuid.UUID, now time.Time) error {
	habits, err := rs.userHabits(ctx, uid)
	if err != nil {
		return err
	}
	today := tracking.DayOf(now)
	var completedCount, totalCount, streak int
	for _, habit := range habits {
		if !habit.IsActive || !tracking.IsDue(habit, today) {
			continue
		}
		totalCount++
		entries, err := rs.entriesRepo.GetByHabitAndDateRange(ctx, habit.ID, tracking.DayOf(habit.CreatedAt), today)
		if err != nil {
			return errors.New("repository error: " + err.Error())
		}
		habitLog := tracking.NewEntryLog(entries...)
		if habitLog.IsCompleted(habit.ID, today) {
			completedCount++
		}
		if cur := tracking.CurrentStreak(habit, habitLog, now); cur > streak {
			streak = cur
		}
	}
	err = rs.notifier.DailySummary(ctx, completedCount, totalCount, streak)
	if err != nil {
		return errors.New("notifier error: " + err.Error())
	}
	return nil
}

func (rs *ReminderService) completedToday(ctx context.Context, habitID uuid.UUID, today time.Time) (bool, error) {
	entries, err := rs.entriesRepo.GetByHabitAndDateRange(ctx, habitID, today, today)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	for _, entry := range entries {
		if entry.Completed {
			return true, nil
		}
	}
	return false, nil
}

func (rs *ReminderService) userHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for offset := 0; ; offset += habitsPageSize {
		page, err := rs.habitsRepo.GetByUserID(ctx, uid, habitsPageSize, offset)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		habits = append(habits, page...)
		if len(page) < habitsPageSize {
			return habits, nil
		}
	}
}

// inReminderWindow reports whether now is within the window around the
// "HH:MM" time of day. Malformed times never match.
func inReminderWindow(timeOfDay string, now time.Time) bool {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	diff := now.Sub(at)
	if diff < 0 {
		diff = -diff
	}
	return diff <= reminderWindow
}
