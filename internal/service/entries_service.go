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

type EntriesService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
}

func NewEntriesService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI) *EntriesService {
	if habitsRepo == nil || entriesRepo == nil {
		log.Fatal("on entries service provided nil repos")
	}
	return &EntriesService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
	}
}

func (serv *EntriesService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
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

func (serv *EntriesService) LogEntry(ctx context.Context, habitID, userID uuid.UUID, req *LogEntryRequest) (*entity.HabitEntry, error) {
	habit, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, errorvalues.ErrHabitArchived
	}
	day := tracking.DayOf(req.Date)
	if day.After(tracking.DayOf(time.Now())) {
		return nil, errorvalues.ErrEntryDateNotAllowed
	}
	entry := entity.HabitEntry{
		ID:           uuid.New(),
		HabitID:      habitID,
		UserID:       userID,
		Date:         day,
		Completed:    req.Completed,
		Value:        req.Value,
		Duration:     req.Duration,
		Notes:        req.Notes,
		IsSynced:     false,
		LastModified: time.Now(),
	}
	err = serv.entriesRepo.Upsert(ctx, &entry)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrStaleEntry):
			return nil, err
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entry, nil
}

func (serv *EntriesService) GetEntries(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error) {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	entries, err := serv.entriesRepo.GetByHabitAndDateRange(ctx, habitID, tracking.DayOf(from), tracking.DayOf(to))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

func (serv *EntriesService) DeleteEntry(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	_, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	err = serv.entriesRepo.Delete(ctx, habitID, tracking.DayOf(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
