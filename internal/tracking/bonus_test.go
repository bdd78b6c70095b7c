package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

func TestStreakBonus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Days  int
		Coins int
	}{
		{Days: 0, Coins: 0},
		{Days: 6, Coins: 0},
		{Days: 7, Coins: 5},
		{Days: 13, Coins: 5},
		{Days: 14, Coins: 10},
		{Days: 30, Coins: 15},
		{Days: 50, Coins: 25},
		{Days: 99, Coins: 25},
		{Days: 100, Coins: 50},
		{Days: 365, Coins: 50},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Coins, tracking.StreakBonus(tc.Days), "days=%d", tc.Days)
	}
}

func TestWeeklyGoalBonus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Completions int
		Coins       int
	}{
		{Completions: 0, Coins: 0},
		{Completions: 9, Coins: 0},
		{Completions: 10, Coins: 5},
		{Completions: 20, Coins: 10},
		{Completions: 25, Coins: 10},
		{Completions: 30, Coins: 15},
		{Completions: 50, Coins: 20},
		{Completions: 80, Coins: 20},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Coins, tracking.WeeklyGoalBonus(tc.Completions), "completions=%d", tc.Completions)
	}
}

func TestStreakBonusMonotonic(t *testing.T) {
	t.Parallel()
	prev := 0
	for days := 0; days <= 150; days++ {
		coins := tracking.StreakBonus(days)
		assert.GreaterOrEqual(t, coins, prev, "days=%d", days)
		prev = coins
	}
}

func TestRewardDescriptors(t *testing.T) {
	t.Parallel()
	reward, ok := tracking.StreakReward(14)
	require.True(t, ok)
	assert.Equal(t, 10, reward.Amount)
	assert.Equal(t, entity.SourceStreakBonus, reward.Source)
	assert.Equal(t, "14-day streak bonus!", reward.Description)

	_, ok = tracking.StreakReward(3)
	assert.False(t, ok)

	reward, ok = tracking.WeeklyGoalReward(25)
	require.True(t, ok)
	assert.Equal(t, 10, reward.Amount)
	assert.Equal(t, entity.SourceWeeklyBonus, reward.Source)

	_, ok = tracking.WeeklyGoalReward(9)
	assert.False(t, ok)
}

func TestTierThresholds(t *testing.T) {
	t.Parallel()
	assert.Zero(t, tracking.StreakTier(6))
	assert.Equal(t, 7, tracking.StreakTier(7))
	assert.Equal(t, 7, tracking.StreakTier(13))
	assert.Equal(t, 14, tracking.StreakTier(14))
	assert.Equal(t, 100, tracking.StreakTier(250))
	assert.Zero(t, tracking.WeeklyTier(9))
	assert.Equal(t, 20, tracking.WeeklyTier(29))
	assert.Equal(t, 50, tracking.WeeklyTier(51))
}
