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

type BonusService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
	coins       CoinsServiceI
}

func NewBonusService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI, coins CoinsServiceI) *BonusService {
	if habitsRepo == nil || entriesRepo == nil || coins == nil {
		log.Fatal("on bonus service provided nil dependencies")
	}
	return &BonusService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
		coins:       coins,
	}
}

// EvaluateBonuses walks the user's active habits, pays the streak
// milestone bonus for every habit whose streak crossed a new tier, and
// the weekly completions bonus when this week's total crossed one. The
// coin service's tier record keeps repeated evaluation from paying
// twice, so this is safe to call after every logged entry.
func (bs *BonusService) EvaluateBonuses(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.Reward, error) {
	habits, err := bs.userHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	today := tracking.DayOf(now)
	rewards := make([]entity.Reward, 0)
	weeklyCompletions := 0
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}
		entries, err := bs.entriesRepo.GetByHabitAndDateRange(ctx, habit.ID, tracking.DayOf(habit.CreatedAt), today)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		habitLog := tracking.NewEntryLog(entries...)
		weeklyCompletions += tracking.WeeklyCount(habit.ID, habitLog, today)
		streak := tracking.CurrentStreak(habit, habitLog, now)
		reward, err := bs.coins.GrantStreakBonus(ctx, uid, habit.ID, streak)
		if err != nil {
			return nil, err
		}
		if reward != nil {
			rewards = append(rewards, *reward)
		}
	}
	reward, err := bs.coins.GrantWeeklyGoalBonus(ctx, uid, weeklyCompletions)
	if err != nil {
		return nil, err
	}
	if reward != nil {
		rewards = append(rewards, *reward)
	}
	return rewards, nil
}

func (bs *BonusService) userHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	all := make([]*entity.Habit, 0)
	for offset := 0; ; offset += habitsPageSize {
		page, err := bs.habitsRepo.GetByUserID(ctx, uid, habitsPageSize, offset)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		all = append(all, page...)
		if len(page) < habitsPageSize {
			return all, nil
		}
	}
}
