package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/internal/repository"
	"github.com/youthlab/habitrack/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func validateHabitRequest(req *CreateHabitRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	if req.Schedule.Frequency == "" {
		return errors.New("validation error: schedule frequency is required")
	}
	for _, wd := range req.Schedule.Weekdays {
		if wd < 0 || wd > 6 {
			return errors.New("validation error: weekday out of range")
		}
	}
	for _, day := range req.Schedule.CustomDays {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return errors.New("validation error: bad custom day: " + day)
		}
	}
	return nil
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateHabitRequest(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Color:       req.Color,
		Icon:        req.Icon,
		Schedule:    req.Schedule,
		Goals:       req.Goals,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *CreateHabitRequest) error {
	if err := validateHabitRequest(req); err != nil {
		return err
	}
	habit, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	habit.Name = req.Name
	habit.Description = req.Description
	habit.Type = req.Type
	habit.Category = req.Category
	habit.Color = req.Color
	habit.Icon = req.Icon
	habit.Schedule = req.Schedule
	habit.Goals = req.Goals
	err = hs.repo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) ArchiveHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	if !habit.IsActive {
		return errorvalues.ErrHabitArchived
	}
	err = hs.repo.Archive(ctx, habitID, time.Now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
