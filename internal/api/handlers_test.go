package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/youthlab/habitrack/internal/api"
	errorvalues "github.com/youthlab/habitrack/internal/error_values"
	"github.com/youthlab/habitrack/internal/service"
	"github.com/youthlab/habitrack/internal/tracking"
	"github.com/youthlab/habitrack/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
	habitID         = uuid.New()
)

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, pass string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errorvalues.ErrWrongCredentials
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{ID: uid, Name: username}, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (usmock *UserServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{ID: uid, Name: username}, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, pass string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

type HabitsServiceMock struct {
	err error
}

func testHabitEntity() *entity.Habit {
	return &entity.Habit{
		ID:     habitID,
		UserID: uid,
		Name:   "Morning run",
		Type:   entity.TypeYesNo,
		Schedule: entity.HabitSchedule{
			Frequency: entity.FrequencyDaily,
		},
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (hsmock *HabitsServiceMock) CreateHabit(ctx context.Context, userID uuid.UUID, req *service.CreateHabitRequest) (*entity.Habit, error) {
	if hsmock.err != nil {
		return nil, hsmock.err
	}
	return testHabitEntity(), nil
}

func (hsmock *HabitsServiceMock) GetHabit(ctx context.Context, id, userID uuid.UUID) (*entity.Habit, error) {
	if hsmock.err != nil {
		return nil, hsmock.err
	}
	return testHabitEntity(), nil
}

func (hsmock *HabitsServiceMock) GetUserHabits(ctx context.Context, userID uuid.UUID, pagination service.PaginationOpts) ([]*entity.Habit, error) {
	if hsmock.err != nil {
		return nil, hsmock.err
	}
	return []*entity.Habit{testHabitEntity()}, nil
}

func (hsmock *HabitsServiceMock) UpdateHabit(ctx context.Context, id, userID uuid.UUID, req *service.CreateHabitRequest) error {
	return hsmock.err
}

func (hsmock *HabitsServiceMock) ArchiveHabit(ctx context.Context, id, userID uuid.UUID) error {
	return hsmock.err
}

func (hsmock *HabitsServiceMock) DeleteHabit(ctx context.Context, id, userID uuid.UUID) error {
	return hsmock.err
}

type EntriesServiceMock struct {
	err error
}

func (esmock *EntriesServiceMock) LogEntry(ctx context.Context, id, userID uuid.UUID, req *service.LogEntryRequest) (*entity.HabitEntry, error) {
	if esmock.err != nil {
		return nil, esmock.err
	}
	return &entity.HabitEntry{
		ID:        uuid.New(),
		HabitID:   id,
		UserID:    userID,
		Date:      req.Date,
		Completed: req.Completed,
	}, nil
}

func (esmock *EntriesServiceMock) GetEntries(ctx context.Context, id, userID uuid.UUID, from, to time.Time) ([]entity.HabitEntry, error) {
	if esmock.err != nil {
		return nil, esmock.err
	}
	return []entity.HabitEntry{{HabitID: id, UserID: userID, Completed: true}}, nil
}

func (esmock *EntriesServiceMock) DeleteEntry(ctx context.Context, id, userID uuid.UUID, date time.Time) error {
	return esmock.err
}

type StatsServiceMock struct {
	err error
}

func (ssmock *StatsServiceMock) HabitStats(ctx context.Context, id, userID uuid.UUID, asOf time.Time) (*entity.HabitStats, error) {
	if ssmock.err != nil {
		return nil, ssmock.err
	}
	return &entity.HabitStats{HabitID: id, CurrentStreak: 3, LongestStreak: 5, TotalChecks: 12}, nil
}

func (ssmock *StatsServiceMock) GoalProgress(ctx context.Context, id, userID uuid.UUID, asOf time.Time) (*tracking.GoalProgress, error) {
	if ssmock.err != nil {
		return nil, ssmock.err
	}
	return &tracking.GoalProgress{}, nil
}

func (ssmock *StatsServiceMock) UserStats(ctx context.Context, userID uuid.UUID, asOf time.Time) (*entity.UserStats, error) {
	if ssmock.err != nil {
		return nil, ssmock.err
	}
	return &entity.UserStats{UserID: userID, CurrentStreak: 3}, nil
}

func (ssmock *StatsServiceMock) GoalHistory(ctx context.Context, id, userID uuid.UUID, from, to time.Time) ([]service.DailyProgress, error) {
	if ssmock.err != nil {
		return nil, ssmock.err
	}
	return []service.DailyProgress{{Date: from}}, nil
}

type CoinsServiceMock struct {
	err error
}

func (csmock *CoinsServiceMock) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	if csmock.err != nil {
		return 0, csmock.err
	}
	return 120, nil
}

func (csmock *CoinsServiceMock) History(ctx context.Context, userID uuid.UUID) ([]entity.CoinTransaction, error) {
	if csmock.err != nil {
		return nil, csmock.err
	}
	return []entity.CoinTransaction{{UserID: userID, Amount: 5}}, nil
}

func (csmock *CoinsServiceMock) Earn(ctx context.Context, userID uuid.UUID, amount int, source entity.CoinSource, description string) (int, error) {
	if csmock.err != nil {
		return 0, csmock.err
	}
	return 120 + amount, nil
}

func (csmock *CoinsServiceMock) Spend(ctx context.Context, userID uuid.UUID, amount int, source entity.CoinSource, description string) (int, error) {
	if csmock.err != nil {
		return 0, csmock.err
	}
	return 120 - amount, nil
}

func (csmock *CoinsServiceMock) Cheer(ctx context.Context, fromUID, toUID uuid.UUID) error {
	return csmock.err
}

func (csmock *CoinsServiceMock) GrantStreakBonus(ctx context.Context, userID, id uuid.UUID, streakDays int) (*entity.Reward, error) {
	return nil, csmock.err
}

func (csmock *CoinsServiceMock) GrantWeeklyGoalBonus(ctx context.Context, userID uuid.UUID, weeklyCompletions int) (*entity.Reward, error) {
	return nil, csmock.err
}

type BonusServiceMock struct {
	err error
}

func (bsmock *BonusServiceMock) EvaluateBonuses(ctx context.Context, userID uuid.UUID, now time.Time) ([]entity.Reward, error) {
	if bsmock.err != nil {
		return nil, bsmock.err
	}
	return []entity.Reward{{Amount: 5, Source: entity.SourceStreakBonus, Description: "7-day streak bonus!"}}, nil
}

type SyncServiceMock struct {
	err error
}

func (sync *SyncServiceMock) Sync(ctx context.Context, userID uuid.UUID, from, to time.Time) (*service.SyncReport, error) {
	if sync.err != nil {
		return nil, sync.err
	}
	return &service.SyncReport{Merged: 2, Pushed: 1, Adopted: 1, SyncedAt: time.Now()}, nil
}

type ReminderServiceMock struct {
	err error
}

func (rem *ReminderServiceMock) EvaluateReminders(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return rem.err
}

func (rem *ReminderServiceMock) DailySummary(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return rem.err
}

func newTestServer(habitsErr, entriesErr, statsErr, coinsErr, syncErr error) *api.Server {
	return api.New(&api.ServicesList{
		UserService:     &UserServiceMock{success: true},
		HabitsService:   &HabitsServiceMock{err: habitsErr},
		EntriesService:  &EntriesServiceMock{err: entriesErr},
		StatsService:    &StatsServiceMock{err: statsErr},
		CoinsService:    &CoinsServiceMock{err: coinsErr},
		BonusService:    &BonusServiceMock{err: coinsErr},
		SyncService:     &SyncServiceMock{err: syncErr},
		ReminderService: &ReminderServiceMock{},
	})
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := api.ContextWithUID(req.Context(), uid)
	return req.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestCreateHabitHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.HabitRequest{
		Name: "Morning run",
		Type: entity.TypeYesNo,
		Schedule: entity.HabitSchedule{
			Frequency: entity.FrequencyDaily,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("created", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.CreateHabit(rr, authedRequest(http.MethodPost, "/habits", body))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/habits", bytes.NewReader(body))
		serv.CreateHabit(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("unexist user", func(t *testing.T) {
		serv := newTestServer(errorvalues.ErrUserNotFound, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.CreateHabit(rr, authedRequest(http.MethodPost, "/habits", body))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestArchiveHabitHandler(t *testing.T) {
	target := "/habits/" + habitID.String() + "/archive"
	t.Run("archived", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPost, target, nil)
		req.SetPathValue("id", habitID.String())
		serv.ArchiveHabit(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("already archived", func(t *testing.T) {
		serv := newTestServer(errorvalues.ErrHabitArchived, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPost, target, nil)
		req.SetPathValue("id", habitID.String())
		serv.ArchiveHabit(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPost, "/habits/xxx/archive", nil)
		req.SetPathValue("id", "xxx")
		serv.ArchiveHabit(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogEntryHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LogEntryRequest{Completed: true})
	if err != nil {
		t.Fatal(err)
	}
	target := "/habits/" + habitID.String() + "/entries/2026-03-10"
	t.Run("logged", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, target, body)
		req.SetPathValue("id", habitID.String())
		req.SetPathValue("date", "2026-03-10")
		serv.LogEntry(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, target, body)
		req.SetPathValue("id", habitID.String())
		req.SetPathValue("date", "10.03.2026")
		serv.LogEntry(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("future date", func(t *testing.T) {
		serv := newTestServer(nil, errorvalues.ErrEntryDateNotAllowed, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, target, body)
		req.SetPathValue("id", habitID.String())
		req.SetPathValue("date", "2026-03-10")
		serv.LogEntry(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("stale write", func(t *testing.T) {
		serv := newTestServer(nil, errorvalues.ErrStaleEntry, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, target, body)
		req.SetPathValue("id", habitID.String())
		req.SetPathValue("date", "2026-03-10")
		serv.LogEntry(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("archived habit", func(t *testing.T) {
		serv := newTestServer(nil, errorvalues.ErrHabitArchived, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, target, body)
		req.SetPathValue("id", habitID.String())
		req.SetPathValue("date", "2026-03-10")
		serv.LogEntry(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}

func TestGetEntriesHandler(t *testing.T) {
	target := "/habits/" + habitID.String() + "/entries?from=2026-03-01&to=2026-03-31"
	t.Run("provided", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, target, nil)
		req.SetPathValue("id", habitID.String())
		serv.GetEntries(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("reversed range", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/habits/"+habitID.String()+"/entries?from=2026-03-31&to=2026-03-01", nil)
		req.SetPathValue("id", habitID.String())
		serv.GetEntries(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unexist habit", func(t *testing.T) {
		serv := newTestServer(nil, errorvalues.ErrHabitNotFound, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, target, nil)
		req.SetPathValue("id", habitID.String())
		serv.GetEntries(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestStatsHandlers(t *testing.T) {
	t.Run("habit stats", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/habits/"+habitID.String()+"/stats", nil)
		req.SetPathValue("id", habitID.String())
		serv.GetHabitStats(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("user stats", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.GetUserStats(rr, authedRequest(http.MethodGet, "/stats", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("goal history requires premium", func(t *testing.T) {
		serv := newTestServer(nil, nil, errorvalues.ErrPremiumRequired, nil, nil)
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/habits/"+habitID.String()+"/goals/history", nil)
		req.SetPathValue("id", habitID.String())
		serv.GetGoalHistory(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestCoinsHandlers(t *testing.T) {
	t.Run("balance", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.GetCoinsBalance(rr, authedRequest(http.MethodGet, "/coins", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("history", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.GetCoinsHistory(rr, authedRequest(http.MethodGet, "/coins/history", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("spend", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.SpendCoinsRequest{
			Amount:      40,
			Source:      entity.SourcePremiumFeature,
			Description: "Theme unlock",
		})
		if err != nil {
			t.Fatal(err)
		}
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.SpendCoins(rr, authedRequest(http.MethodPost, "/coins/spend", body))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("insufficient funds", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.SpendCoinsRequest{
			Amount: 10000,
			Source: entity.SourcePremiumFeature,
		})
		if err != nil {
			t.Fatal(err)
		}
		serv := newTestServer(nil, nil, nil, errorvalues.ErrInsufficientFunds, nil)
		rr := httptest.NewRecorder()
		serv.SpendCoins(rr, authedRequest(http.MethodPost, "/coins/spend", body))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("cheer", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.CheerRequest{To: uuid.New().String()})
		if err != nil {
			t.Fatal(err)
		}
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.CheerUser(rr, authedRequest(http.MethodPost, "/coins/cheer", body))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("cheer with invalid receiver id", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.CheerRequest{To: "not-a-uuid"})
		if err != nil {
			t.Fatal(err)
		}
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.CheerUser(rr, authedRequest(http.MethodPost, "/coins/cheer", body))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("cheer on empty wallet", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.CheerRequest{To: uuid.New().String()})
		if err != nil {
			t.Fatal(err)
		}
		serv := newTestServer(nil, nil, nil, errorvalues.ErrInsufficientFunds, nil)
		rr := httptest.NewRecorder()
		serv.CheerUser(rr, authedRequest(http.MethodPost, "/coins/cheer", body))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}

func TestBonusHandler(t *testing.T) {
	t.Run("evaluated", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.EvaluateBonuses(rr, authedRequest(http.MethodPost, "/bonuses/evaluate", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, errors.New("db error"), nil)
		rr := httptest.NewRecorder()
		serv.EvaluateBonuses(rr, authedRequest(http.MethodPost, "/bonuses/evaluate", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bonuses/evaluate", nil)
		serv.EvaluateBonuses(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestSyncHandler(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.SyncEntries(rr, authedRequest(http.MethodPost, "/sync", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("remote down", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, errors.New("remote fetch error"))
		rr := httptest.NewRecorder()
		serv.SyncEntries(rr, authedRequest(http.MethodPost, "/sync", nil))
		assert.Equal(t, http.StatusBadGateway, rr.Result().StatusCode)
	})
}

func TestReminderHandlers(t *testing.T) {
	t.Run("evaluated", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.EvaluateReminders(rr, authedRequest(http.MethodPost, "/reminders/evaluate", nil))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("summary sent", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		serv.SendDailySummary(rr, authedRequest(http.MethodPost, "/reminders/summary", nil))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("evaluate unauthorized", func(t *testing.T) {
		serv := newTestServer(nil, nil, nil, nil, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reminders/evaluate", nil)
		serv.EvaluateReminders(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		serv := api.New(&api.ServicesList{
			ReminderService: &ReminderServiceMock{err: errors.New("repo error")},
		})
		rr := httptest.NewRecorder()
		serv.EvaluateReminders(rr, authedRequest(http.MethodPost, "/reminders/evaluate", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
