package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/youthlab/habitrack/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	habitsService   service.HabitsServiceI
	entriesService  service.EntriesServiceI
	statsService    service.StatsServiceI
	coinsService    service.CoinsServiceI
	bonusService    service.BonusServiceI
	syncService     service.SyncServiceI
	reminderService service.ReminderServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	HabitsService   service.HabitsServiceI
	EntriesService  service.EntriesServiceI
	StatsService    service.StatsServiceI
	CoinsService    service.CoinsServiceI
	BonusService    service.BonusServiceI
	SyncService     service.SyncServiceI
	ReminderService service.ReminderServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		habitsService:   servicesOptions.HabitsService,
		entriesService:  servicesOptions.EntriesService,
		statsService:    servicesOptions.StatsService,
		coinsService:    servicesOptions.CoinsService,
		bonusService:    servicesOptions.BonusService,
		syncService:     servicesOptions.SyncService,
		reminderService: servicesOptions.ReminderService,
		jwtService:      servicesOptions.JwtService,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Get("/{id}", s.GetHabit)
				r.Put("/{id}", s.UpdateHabit)
				r.Post("/{id}/archive", s.ArchiveHabit)
				r.Delete("/{id}", s.DeleteHabit)
				r.Put("/{id}/entries/{date}", s.LogEntry)
				r.Get("/{id}/entries", s.GetEntries)
				r.Delete("/{id}/entries/{date}", s.DeleteEntry)
				r.Get("/{id}/stats", s.GetHabitStats)
				r.Get("/{id}/goals", s.GetGoalProgress)
				r.Get("/{id}/goals/history", s.GetGoalHistory)
			})
			r.Get("/stats", s.GetUserStats)
			r.Get("/coins", s.GetCoinsBalance)
			r.Get("/coins/history", s.GetCoinsHistory)
			r.Post("/coins/spend", s.SpendCoins)
			r.Post("/coins/cheer", s.CheerUser)
			r.Post("/bonuses/evaluate", s.EvaluateBonuses)
			r.Post("/sync", s.SyncEntries)
			r.Post("/reminders/evaluate", s.EvaluateReminders)
			r.Post("/reminders/summary", s.SendDailySummary)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
