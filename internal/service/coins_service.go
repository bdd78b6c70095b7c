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

const (
	historyLimit = 100
	cheerCost    = 1
)

type CoinsService struct {
	repo repository.CoinsRepositoryI
}

func NewCoinsService(coinsRepo repository.CoinsRepositoryI) *CoinsService {
	if coinsRepo == nil {
		log.Fatal("provided nil coinsRepo")
	}
	return &CoinsService{
		repo: coinsRepo,
	}
}

func (cs *CoinsService) Balance(ctx context.Context, uid uuid.UUID) (int, error) {
	balance, err := cs.repo.Balance(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("coins repository error: " + err.Error())
	}
	return balance, nil
}

func (cs *CoinsService) History(ctx context.Context, uid uuid.UUID) ([]entity.CoinTransaction, error) {
	history, err := cs.repo.History(ctx, uid, historyLimit)
	if err != nil {
		return nil, errors.New("coins repository error: " + err.Error())
	}
	return history, nil
}

func (cs *CoinsService) Earn(ctx context.Context, uid uuid.UUID, amount int, source entity.CoinSource, description string) (int, error) {
	if amount <= 0 {
		return 0, errors.New("earn amount must be positive")
	}
	return cs.append(ctx, uid, amount, entity.TxEarned, source, description, "")
}

func (cs *CoinsService) Spend(ctx context.Context, uid uuid.UUID, amount int, source entity.CoinSource, description string) (int, error) {
	if amount <= 0 {
		return 0, errors.New("spend amount must be positive")
	}
	return cs.append(ctx, uid, -amount, entity.TxSpent, source, description, "")
}

func (cs *CoinsService) append(ctx context.Context, uid uuid.UUID, amount int, txType entity.TransactionType, source entity.CoinSource, description, relatedID string) (int, error) {
	balance, err := cs.repo.AppendTransaction(ctx, &entity.CoinTransaction{
		ID:          uuid.New(),
		UserID:      uid,
		Amount:      amount,
		Type:        txType,
		Source:      source,
		Description: description,
		RelatedID:   relatedID,
		Timestamp:   time.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInsufficientFunds):
			return 0, err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return 0, err
		}
		return 0, errors.New("coins repository error: " + err.Error())
	}
	return balance, nil
}

// Cheer moves the cheer cost from the sender to the receiver. Each
// side's related id points at the other party, so the two rows can be
// matched up in the history.
func (cs *CoinsService) Cheer(ctx context.Context, fromUID, toUID uuid.UUID) error {
	if fromUID == toUID {
		return errors.New("cheering yourself is not allowed")
	}
	_, err := cs.append(ctx, fromUID, -cheerCost, entity.TxSpent, entity.SourceCheerSent, "Sent cheer to user", toUID.String())
	if err != nil {
		return err
	}
	_, err = cs.append(ctx, toUID, cheerCost, entity.TxEarned, entity.SourceCheerReceived, "Received cheer from user", fromUID.String())
	if err != nil {
		return err
	}
	return nil
}

// GrantStreakBonus awards the streak milestone bonus for a habit. Each
// tier pays out at most once per habit: the highest granted tier is
// persisted and re-crossing it is a no-op. Returns nil when nothing new
// was earned.
func (cs *CoinsService) GrantStreakBonus(ctx context.Context, uid, habitID uuid.UUID, streakDays int) (*entity.Reward, error) {
	reward, ok := tracking.StreakReward(streakDays)
	if !ok {
		return nil, nil
	}
	tier := tracking.StreakTier(streakDays)
	return cs.grant(ctx, uid, habitID.String(), tier, reward)
}

// GrantWeeklyGoalBonus awards the weekly completions bonus, at most
// once per tier per user.
func (cs *CoinsService) GrantWeeklyGoalBonus(ctx context.Context, uid uuid.UUID, weeklyCompletions int) (*entity.Reward, error) {
	reward, ok := tracking.WeeklyGoalReward(weeklyCompletions)
	if !ok {
		return nil, nil
	}
	tier := tracking.WeeklyTier(weeklyCompletions)
	return cs.grant(ctx, uid, uid.String(), tier, reward)
}

func (cs *CoinsService) grant(ctx context.Context, uid uuid.UUID, relatedID string, tier int, reward entity.Reward) (*entity.Reward, error) {
	lastTier, err := cs.repo.LastGrantedTier(ctx, uid, reward.Source, relatedID)
	if err != nil {
		return nil, errors.New("coins repository error: " + err.Error())
	}
	if tier <= lastTier {
		return nil, nil
	}
	// Payout and tier record land in one database transaction, so a
	// crash can never pay the same tier twice.
	_, err = cs.repo.AppendWithGrant(ctx, &entity.CoinTransaction{
		ID:          uuid.New(),
		UserID:      uid,
		Amount:      reward.Amount,
		Type:        entity.TxEarned,
		Source:      reward.Source,
		Description: reward.Description,
		RelatedID:   relatedID,
		Timestamp:   time.Now(),
	}, tier)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("coins repository error: " + err.Error())
	}
	return &reward, nil
}
