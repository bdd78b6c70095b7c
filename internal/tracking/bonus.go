package tracking

import (
	"fmt"

	"github.com/youthlab/habitrack/pkg/entity"
)

type bonusTier struct {
	Threshold int
	Coins     int
}

var streakTiers = []bonusTier{
	{Threshold: 100, Coins: 50},
	{Threshold: 50, Coins: 25},
	{Threshold: 30, Coins: 15},
	{Threshold: 14, Coins: 10},
	{Threshold: 7, Coins: 5},
}

var weeklyTiers = []bonusTier{
	{Threshold: 50, Coins: 20},
	{Threshold: 30, Coins: 15},
	{Threshold: 20, Coins: 10},
	{Threshold: 10, Coins: 5},
}

func tierFor(tiers []bonusTier, value int) bonusTier {
	for _, t := range tiers {
		if value >= t.Threshold {
			return t
		}
	}
	return bonusTier{}
}

// StreakBonus maps a streak length to its coin bonus.
func StreakBonus(streakDays int) int {
	return tierFor(streakTiers, streakDays).Coins
}

// WeeklyGoalBonus maps a weekly completion count to its coin bonus.
func WeeklyGoalBonus(weeklyCompletions int) int {
	return tierFor(weeklyTiers, weeklyCompletions).Coins
}

// StreakTier returns the threshold the streak has reached, 0 below the
// lowest tier. Callers persist the last granted tier per habit so each
// milestone pays out at most once.
func StreakTier(streakDays int) int {
	return tierFor(streakTiers, streakDays).Threshold
}

// WeeklyTier returns the threshold the weekly completion count reached.
func WeeklyTier(weeklyCompletions int) int {
	return tierFor(weeklyTiers, weeklyCompletions).Threshold
}

// StreakReward builds the ledger descriptor for a streak bonus. The
// second return is false when the streak earns nothing.
func StreakReward(streakDays int) (entity.Reward, bool) {
	coins := StreakBonus(streakDays)
	if coins == 0 {
		return entity.Reward{}, false
	}
	return entity.Reward{
		Amount:      coins,
		Source:      entity.SourceStreakBonus,
		Description: fmt.Sprintf("%d-day streak bonus!", streakDays),
	}, true
}

// WeeklyGoalReward builds the ledger descriptor for a weekly goal bonus.
func WeeklyGoalReward(weeklyCompletions int) (entity.Reward, bool) {
	coins := WeeklyGoalBonus(weeklyCompletions)
	if coins == 0 {
		return entity.Reward{}, false
	}
	return entity.Reward{
		Amount:      coins,
		Source:      entity.SourceWeeklyBonus,
		Description: fmt.Sprintf("Weekly goal completed: %d habits!", weeklyCompletions),
	}, true
}
