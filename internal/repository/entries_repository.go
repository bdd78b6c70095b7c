package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/pkg/cleanup"
	"github.com/youthlab/habitrack/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

// Upsert is last-write-wins keyed by (habit_id, entry_date). The WHERE
// clause on the conflict branch is the compare-and-set: an incoming row
// with last_modified not greater than the stored one changes nothing
// and is reported as ErrStaleEntry.
func (er *EntriesRepository) Upsert(ctx context.Context, entry *entity.HabitEntry) error {
	ct, err := er.conn.Exec(ctx,
		`INSERT INTO habit_entries (id, habit_id, user_id, entry_date, completed, value, duration, notes, is_synced, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (habit_id, entry_date) DO UPDATE
		SET completed = EXCLUDED.completed, value = EXCLUDED.value, duration = EXCLUDED.duration,
			notes = EXCLUDED.notes, is_synced = EXCLUDED.is_synced, last_modified = EXCLUDED.last_modified
		WHERE habit_entries.last_modified < EXCLUDED.last_modified;`,
		entry.ID,
		entry.HabitID,
		entry.UserID,
		entry.Date,
		entry.Completed,
		entry.Value,
		entry.Duration,
		entry.Notes,
		entry.IsSynced,
		entry.LastModified,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("upserting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStaleEntry
	}
	return nil
}

func (er *EntriesRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(ctx,
		`SELECT id, habit_id, user_id, entry_date, completed, value, duration, notes, is_synced, last_modified
		FROM habit_entries WHERE habit_id = $1 AND entry_date >= $2 AND entry_date <= $3 ORDER BY entry_date;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting entries for period error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(ctx,
		`SELECT id, habit_id, user_id, entry_date, completed, value, duration, notes, is_synced, last_modified
		FROM habit_entries WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3 ORDER BY entry_date;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting user entries for period error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) GetUnsynced(ctx context.Context, uid uuid.UUID) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(ctx,
		`SELECT id, habit_id, user_id, entry_date, completed, value, duration, notes, is_synced, last_modified
		FROM habit_entries WHERE user_id = $1 AND NOT is_synced ORDER BY entry_date;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting unsynced entries error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) MarkSynced(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := er.conn.Exec(ctx,
		`UPDATE habit_entries SET is_synced = TRUE WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return errors.New("marking entries synced error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := er.conn.Exec(ctx,
		`DELETE FROM habit_entries WHERE habit_id = $1 AND entry_date = $2;`,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]entity.HabitEntry, error) {
	defer rows.Close()
	result := make([]entity.HabitEntry, 0, 8)
	for rows.Next() {
		e := entity.HabitEntry{}
		err := rows.Scan(&e.ID, &e.HabitID, &e.UserID, &e.Date, &e.Completed,
			&e.Value, &e.Duration, &e.Notes, &e.IsSynced, &e.LastModified)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}
