package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Coins        int
	IsPremium    bool
}

type HabitType string

const (
	TypeYesNo       HabitType = "YES_NO"
	TypeDuration    HabitType = "DURATION"
	TypeCount       HabitType = "COUNT"
	TypeTimed       HabitType = "TIMED"
	TypeMeasurement HabitType = "MEASUREMENT"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyCustom  Frequency = "CUSTOM"
)

// Weekdays are encoded 0=Sunday..6=Saturday, matching time.Weekday.
// CustomDays hold ISO calendar dates ("2006-01-02").
type HabitSchedule struct {
	Frequency   Frequency `json:"frequency"`
	Weekdays    []int     `json:"weekdays,omitempty"`
	TimeOfDay   string    `json:"time_of_day,omitempty"`
	TargetValue *int      `json:"target_value,omitempty"`
	CustomDays  []string  `json:"custom_days,omitempty"`
}

type HabitGoals struct {
	Daily   *int `json:"daily,omitempty"`
	Weekly  *int `json:"weekly,omitempty"`
	Monthly *int `json:"monthly,omitempty"`
}

type Habit struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"uid"`
	Name        string        `json:"name"`
	Description string        `json:"desc"`
	Type        HabitType     `json:"type"`
	Category    string        `json:"category,omitempty"`
	Color       string        `json:"color,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Schedule    HabitSchedule `json:"schedule"`
	Goals       HabitGoals    `json:"goals"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	ArchivedAt  *time.Time    `json:"archived_at,omitempty"`
}

// HabitEntry records one day of habit activity. (HabitID, Date) is the
// reconciliation identity: at most one entry per habit per day.
type HabitEntry struct {
	ID           uuid.UUID `json:"id"`
	HabitID      uuid.UUID `json:"habit_id"`
	UserID       uuid.UUID `json:"uid"`
	Date         time.Time `json:"date"`
	Completed    bool      `json:"completed"`
	Value        *int      `json:"value,omitempty"`
	Duration     *int      `json:"duration,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IsSynced     bool      `json:"is_synced"`
	LastModified time.Time `json:"last_modified"`
}

// UserStats is a derived cache, always reconstructable from habits and
// their entries. Never treated as a source of truth.
type UserStats struct {
	UserID             uuid.UUID `json:"uid"`
	CurrentStreak      int       `json:"current_streak"`
	LongestStreak      int       `json:"longest_streak"`
	TotalCompletions   int       `json:"total_completions"`
	WeeklyCompletions  int       `json:"weekly_completions"`
	MonthlyCompletions int       `json:"monthly_completions"`
}

type HabitStats struct {
	HabitID       uuid.UUID `json:"habit_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	TotalChecks   int       `json:"total_checks"`
}

type TransactionType string

const (
	TxEarned TransactionType = "EARNED"
	TxSpent  TransactionType = "SPENT"
)

type CoinSource string

const (
	SourceAdWatch        CoinSource = "AD_WATCH"
	SourceStreakBonus    CoinSource = "STREAK_BONUS"
	SourceWeeklyBonus    CoinSource = "WEEKLY_BONUS"
	SourceAchievement    CoinSource = "ACHIEVEMENT"
	SourceCheerSent      CoinSource = "CHEER_SENT"
	SourceCheerReceived  CoinSource = "CHEER_RECEIVED"
	SourcePremiumFeature CoinSource = "PREMIUM_FEATURE"
	SourceReferralBonus  CoinSource = "REFERRAL_BONUS"
	SourceDailyBonus     CoinSource = "DAILY_BONUS"
)

// CoinTransaction rows are append-only. The user's balance is defined as
// the sum of transaction amounts and is never mutated independently.
type CoinTransaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"uid"`
	Amount      int             `json:"amount"`
	Type        TransactionType `json:"type"`
	Source      CoinSource      `json:"source"`
	Description string          `json:"description"`
	RelatedID   string          `json:"related_id,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Reward describes a coin bonus to be applied by the ledger.
type Reward struct {
	Amount      int
	Source      CoinSource
	Description string
}
