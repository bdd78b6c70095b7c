package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Name        string `validate:"required,min=1,max=200"`
	Description string `validate:"max=2000"`
	Type        entity.HabitType
	Category    string
	Color       string
	Icon        string
	Schedule    entity.HabitSchedule
	Goals       entity.HabitGoals
}

type LogEntryRequest struct {
	Date      time.Time
	Completed bool
	Value     *int
	Duration  *int
	Notes     string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *CreateHabitRequest) error
	// Soft delete. The habit drops out of due-day math for later dates,
	// its entries stay
	ArchiveHabit(ctx context.Context, habitID, userID uuid.UUID) error
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type EntriesServiceI interface {
	// Creates or replaces the entry for (habit, date), last write wins
	LogEntry(ctx context.Context, habitID, userID uuid.UUID, req *LogEntryRequest) (*entity.HabitEntry, error)
	GetEntries(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error)
	DeleteEntry(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
}

// DailyProgress is one day of a habit's goal breakdown history.
type DailyProgress struct {
	Date     time.Time             `json:"date"`
	Progress tracking.GoalProgress `json:"progress"`
}

type StatsServiceI interface {
	HabitStats(ctx context.Context, habitID, userID uuid.UUID, asOf time.Time) (*entity.HabitStats, error)
	GoalProgress(ctx context.Context, habitID, userID uuid.UUID, asOf time.Time) (*tracking.GoalProgress, error)
	UserStats(ctx context.Context, uid uuid.UUID, asOf time.Time) (*entity.UserStats, error)
	// Day-by-day goal breakdown, available to premium users only
	GoalHistory(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]DailyProgress, error)
}

type CoinsServiceI interface {
	Balance(ctx context.Context, uid uuid.UUID) (int, error)
	History(ctx context.Context, uid uuid.UUID) ([]entity.CoinTransaction, error)
	Earn(ctx context.Context, uid uuid.UUID, amount int, source entity.CoinSource, description string) (int, error)
	Spend(ctx context.Context, uid uuid.UUID, amount int, source entity.CoinSource, description string) (int, error)
	// Transfers the cheer cost from one user to another
	Cheer(ctx context.Context, fromUID, toUID uuid.UUID) error
	// Grants the streak milestone bonus at most once per tier crossing
	// per habit
	GrantStreakBonus(ctx context.Context, uid, habitID uuid.UUID, streakDays int) (*entity.Reward, error)
	// Grants the weekly goal bonus at most once per tier crossing
	GrantWeeklyGoalBonus(ctx context.Context, uid uuid.UUID, weeklyCompletions int) (*entity.Reward, error)
}

type BonusServiceI interface {
	// Recomputes streaks and weekly completions for the user's habits
	// and pays out any newly crossed bonus tiers
	EvaluateBonuses(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.Reward, error)
}

type SyncServiceI interface {
	Sync(ctx context.Context, uid uuid.UUID, from, to time.Time) (*SyncReport, error)
}

type ReminderServiceI interface {
	// Fires a reminder for every habit due now and not completed today.
	// "Now" means within fifteen minutes of the habit's time of day
	EvaluateReminders(ctx context.Context, uid uuid.UUID, now time.Time) error
	// Sends the end-of-day completion digest
	DailySummary(ctx context.Context, uid uuid.UUID, now time.Time) error
}

// RemoteEntriesI is the remote snapshot store the reconciler runs
// against (the cloud backend in the mobile app).
type RemoteEntriesI interface {
	FetchEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error)
	PushEntries(ctx context.Context, entries []entity.HabitEntry) error
}

// NotifierI delivers reminder descriptors. The services decide whether
// and what to notify, delivery is the collaborator's business.
type NotifierI interface {
	HabitReminder(ctx context.Context, habitID uuid.UUID, habitName string) error
	DailySummary(ctx context.Context, completedCount, totalCount, streak int) error
}

// PremiumGateI answers whether extended features are unlocked for the
// user.
type PremiumGateI interface {
	IsPremiumUser(ctx context.Context, uid uuid.UUID) (bool, error)
}
