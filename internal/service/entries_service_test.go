package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/internal/repository/mocks"
	"github.com/youthlab/habitrack/internal/service"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
)

func TestLogEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	serv := service.NewEntriesService(habitsRepo, entriesRepo)
	habitID := uuid.New()
	userID := uuid.New()
	yesterday := time.Now().AddDate(0, 0, -1)
	testCases := []struct {
		Desc         string
		Error        error
		WantErr      bool
		Date         time.Time
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Date: yesterday,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
				entriesRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry *entity.HabitEntry) error {
						assert.Equal(t, habitID, entry.HabitID)
						assert.Equal(t, tracking.DayOf(yesterday), entry.Date)
						assert.False(t, entry.IsSynced)
						assert.NotEqual(t, uuid.UUID{}, entry.ID)
						return nil
					})
			},
		},
		{
			Desc:  "future date",
			Error: errorvalues.ErrEntryDateNotAllowed,
			Date:  time.Now().AddDate(0, 0, 2),
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
			},
		},
		{
			Desc:  "archived habit",
			Error: errorvalues.ErrHabitArchived,
			Date:  yesterday,
			MockPrepFunc: func() {
				habit := activeHabit(habitID, userID)
				habit.IsActive = false
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			Date:  yesterday,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, uuid.New()), nil)
			},
		},
		{
			Desc:  "stale write",
			Error: errorvalues.ErrStaleEntry,
			Date:  yesterday,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
				entriesRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errorvalues.ErrStaleEntry)
			},
		},
		{
			Desc:    "db error",
			WantErr: true,
			Date:    yesterday,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
				entriesRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			entry, err := serv.LogEntry(context.Background(), habitID, userID, &service.LogEntryRequest{
				Date:      tc.Date,
				Completed: true,
			})
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			if tc.WantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, entry.Completed)
		})
	}
}

func TestGetEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	serv := service.NewEntriesService(habitsRepo, entriesRepo)
	habitID := uuid.New()
	userID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	t.Run("success", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
		entriesRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, from, to).
			Return([]entity.HabitEntry{{HabitID: habitID, Date: from, Completed: true}}, nil)
		entries, err := serv.GetEntries(context.Background(), habitID, userID, from, to)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, uuid.New()), nil)
		_, err := serv.GetEntries(context.Background(), habitID, userID, from, to)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	serv := service.NewEntriesService(habitsRepo, entriesRepo)
	habitID := uuid.New()
	userID := uuid.New()
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	t.Run("success", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
		entriesRepo.EXPECT().Delete(gomock.Any(), habitID, date).Return(nil)
		assert.NoError(t, serv.DeleteEntry(context.Background(), habitID, userID, date))
	})
	t.Run("entry not found", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(activeHabit(habitID, userID), nil)
		entriesRepo.EXPECT().Delete(gomock.Any(), habitID, date).Return(errorvalues.ErrEntryNotFound)
		err := serv.DeleteEntry(context.Background(), habitID, userID, date)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}
