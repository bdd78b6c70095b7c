package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/internal/repository"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

const habitsPageSize = 100

type StatsService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
	premium     PremiumGateI
}

func NewStatsService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI, premium PremiumGateI) *StatsService {
	if habitsRepo == nil || entriesRepo == nil || premium == nil {
		log.Fatal("on stats service provided nil dependencies")
	}
	return &StatsService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
		premium:     premium,
	}
}

func (serv *StatsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (serv *StatsService) habitLog(ctx context.Context, habit *entity.Habit, upTo time.Time) (*tracking.EntryLog, error) {
	entries, err := serv.entriesRepo.GetByHabitAndDateRange(ctx, habit.ID, tracking.DayOf(habit.CreatedAt), tracking.DayOf(upTo))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return tracking.NewEntryLog(entries...), nil
}

func (serv *StatsService) HabitStats(ctx context.Context, habitID, userID uuid.UUID, asOf time.Time) (*entity.HabitStats, error) {
	habit, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	habitLog, err := serv.habitLog(ctx, habit, asOf)
	if err != nil {
		return nil, err
	}
	return &entity.HabitStats{
		HabitID:       habitID,
		CurrentStreak: tracking.CurrentStreak(habit, habitLog, asOf),
		LongestStreak: tracking.LongestStreak(habit, habitLog),
		TotalChecks:   tracking.CompletionsSince(habitID, habitLog, tracking.DayOf(habit.CreatedAt)),
	}, nil
}

func (serv *StatsService) GoalProgress(ctx context.Context, habitID, userID uuid.UUID, asOf time.Time) (*tracking.GoalProgress, error) {
	habit, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	habitLog, err := serv.habitLog(ctx, habit, asOf)
	if err != nil {
		return nil, err
	}
	progress := tracking.Progress(habit, habitLog, asOf)
	return &progress, nil
}

// UserStats rebuilds the aggregate snapshot from habits and entries.
// The snapshot is a cache, never a source of truth.
func (serv *StatsService) UserStats(ctx context.Context, uid uuid.UUID, asOf time.Time) (*entity.UserStats, error) {
	habits, err := serv.allHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats := entity.UserStats{UserID: uid}
	for _, habit := range habits {
		habitLog, err := serv.habitLog(ctx, habit, asOf)
		if err != nil {
			return nil, err
		}
		if habit.IsActive {
			if cur := tracking.CurrentStreak(habit, habitLog, asOf); cur > stats.CurrentStreak {
				stats.CurrentStreak = cur
			}
		}
		if longest := tracking.LongestStreak(habit, habitLog); longest > stats.LongestStreak {
			stats.LongestStreak = longest
		}
		stats.TotalCompletions += tracking.CompletionsSince(habit.ID, habitLog, tracking.DayOf(habit.CreatedAt))
		stats.WeeklyCompletions += tracking.WeeklyCount(habit.ID, habitLog, asOf)
		stats.MonthlyCompletions += tracking.MonthlyCount(habit.ID, habitLog, asOf)
	}
	return &stats, nil
}

func (serv *StatsService) GoalHistory(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]DailyProgress, error) {
	isPremium, err := serv.premium.IsPremiumUser(ctx, userID)
	if err != nil {
		return nil, errors.New("premium gate error: " + err.Error())
	}
	if !isPremium {
		return nil, errorvalues.ErrPremiumRequired
	}
	habit, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	habitLog, err := serv.habitLog(ctx, habit, to)
	if err != nil {
		return nil, err
	}
	var history []DailyProgress
	for day := tracking.DayOf(from); !day.After(tracking.DayOf(to)); day = day.AddDate(0, 0, 1) {
		history = append(history, DailyProgress{
			Date:     day,
			Progress: tracking.Progress(habit, habitLog, day),
		})
	}
	return history, nil
}

func (serv *StatsService) allHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	for offset := 0; ; offset += habitsPageSize {
		page, err := serv.habitsRepo.GetByUserID(ctx, uid, habitsPageSize, offset)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		habits = append(habits, page...)
		if len(page) < habitsPageSize {
			return habits, nil
		}
	}
}
