package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/pkg/cleanup"
	"github.com/youthlab/habitrack/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

// Schedule and goals are kept as jsonb columns, the due-day math reads
// them back as structs.
func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	schedule, err := sonic.Marshal(habit.Schedule)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling schedule error: " + err.Error())
	}
	goals, err := sonic.Marshal(habit.Goals)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling goals error: " + err.Error())
	}
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, description, type, category, color, icon, schedule, goals)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		string(habit.Type),
		habit.Category,
		habit.Color,
		habit.Icon,
		schedule,
		goals,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	var schedule, goals []byte
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, name, description, type, category, color, icon, schedule, goals, is_active, created_at, archived_at
		FROM habits WHERE id = $1;`, id)
	err := row.Scan(&habit.UserID, &habit.Name, &habit.Description, (*string)(&habit.Type),
		&habit.Category, &habit.Color, &habit.Icon, &schedule, &goals,
		&habit.IsActive, &habit.CreatedAt, &habit.ArchivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	if err = sonic.Unmarshal(schedule, &habit.Schedule); err != nil {
		return nil, errors.New("unmarshalling schedule error: " + err.Error())
	}
	if err = sonic.Unmarshal(goals, &habit.Goals); err != nil {
		return nil, errors.New("unmarshalling goals error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, name, description, type, category, color, icon, schedule, goals, is_active, created_at, archived_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		var schedule, goals []byte
		err = rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, (*string)(&h.Type),
			&h.Category, &h.Color, &h.Icon, &schedule, &goals,
			&h.IsActive, &h.CreatedAt, &h.ArchivedAt)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		if err = sonic.Unmarshal(schedule, &h.Schedule); err != nil {
			return nil, errors.New("unmarshalling schedule error: " + err.Error())
		}
		if err = sonic.Unmarshal(goals, &h.Goals); err != nil {
			return nil, errors.New("unmarshalling goals error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	schedule, err := sonic.Marshal(habit.Schedule)
	if err != nil {
		return errors.New("marshalling schedule error: " + err.Error())
	}
	goals, err := sonic.Marshal(habit.Goals)
	if err != nil {
		return errors.New("marshalling goals error: " + err.Error())
	}
	ct, err := hr.conn.Exec(ctx,
		`UPDATE habits SET name = $1, description = $2, type = $3, category = $4, color = $5, icon = $6, schedule = $7, goals = $8
		WHERE id = $9;`,
		habit.Name, habit.Description, string(habit.Type), habit.Category, habit.Color, habit.Icon, schedule, goals, habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Archive(ctx context.Context, id uuid.UUID, at time.Time) error {
	ct, err := hr.conn.Exec(ctx,
		`UPDATE habits SET is_active = FALSE, archived_at = $1 WHERE id = $2 AND is_active;`,
		at, id,
	)
	if err != nil {
		return errors.New("error archiving habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
