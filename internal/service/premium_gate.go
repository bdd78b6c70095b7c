package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/internal/repository"
)

// PremiumGate answers premium checks from the users table.
type PremiumGate struct {
	repo repository.UsersRepositoryI
}

func NewPremiumGate(usersRepo repository.UsersRepositoryI) *PremiumGate {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &PremiumGate{
		repo: usersRepo,
	}
}

func (pg *PremiumGate) IsPremiumUser(ctx context.Context, uid uuid.UUID) (bool, error) {
	user, err := pg.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	return user.IsPremium, nil
}
