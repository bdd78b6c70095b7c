package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/youthlab/habitrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. Returns generated id
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates habit's mutable attributes by ID
	Update(ctx context.Context, habit *entity.Habit) error
	// Soft-deletes habit: clears is_active and stamps archived_at.
	// Entries referencing the habit stay in place
	Archive(ctx context.Context, id uuid.UUID, at time.Time) error
	// Physically deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Writes entry under its (habit_id, entry_date) key. On conflict the
	// row is replaced only when the incoming last_modified is greater,
	// otherwise ErrStaleEntry is returned
	Upsert(ctx context.Context, entry *entity.HabitEntry) error
	// Provides entries of habitID for a period, ordered by date
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error)
	// Provides all of user's entries for a period
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error)
	// Lists entries not yet pushed to the remote store
	GetUnsynced(ctx context.Context, uid uuid.UUID) ([]entity.HabitEntry, error)
	// Flags entries as synced after a successful upload
	MarkSynced(ctx context.Context, ids []uuid.UUID) error
	// Deletes entry by (habit_id, entry_date)
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
}

type CoinsRepositoryI interface {
	// Appends transaction and updates the cached balance in one database
	// transaction. Returns the new balance. SPENT amounts exceeding the
	// balance are rejected with ErrInsufficientFunds
	AppendTransaction(ctx context.Context, tx *entity.CoinTransaction) (int, error)
	// Returns the user's cached balance
	Balance(ctx context.Context, uid uuid.UUID) (int, error)
	// Lists recent transactions, newest first
	History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CoinTransaction, error)
	// Appends a bonus transaction and persists the granted tier in the
	// same database transaction
	AppendWithGrant(ctx context.Context, tx *entity.CoinTransaction, tier int) (int, error)
	// Returns the highest bonus tier already granted for (user, source,
	// related id), 0 when nothing was granted yet
	LastGrantedTier(ctx context.Context, uid uuid.UUID, source entity.CoinSource, relatedID string) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
