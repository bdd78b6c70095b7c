// @title Habitrack API
// @description API for the Habitrack habit-tracking app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/youthlab/habitrack/internal/api"
	"github.com/youthlab/habitrack/internal/repository"
	"github.com/youthlab/habitrack/internal/service"
	"github.com/youthlab/habitrack/pkg/cleanup"
	"github.com/youthlab/habitrack/pkg/config"
	jwtservice "github.com/youthlab/habitrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	coinsRepo := repository.NewCoinsRepo(&dbCfg)
	coinsService := service.NewCoinsService(coinsRepo)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		HabitsService:  service.NewHabitsService(habitsRepo),
		EntriesService: service.NewEntriesService(habitsRepo, entriesRepo),
		StatsService:   service.NewStatsService(habitsRepo, entriesRepo, service.NewPremiumGate(usersRepo)),
		CoinsService:   coinsService,
		BonusService:   service.NewBonusService(habitsRepo, entriesRepo, coinsService),
		SyncService: service.NewSyncService(entriesRepo,
			repository.NewRemoteEntriesClient(cfg.GetString("SYNC_REMOTE_URL"))),
		ReminderService: service.NewReminderService(habitsRepo, entriesRepo,
			service.NewLogNotifier(slog.Default())),
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET")),
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		cleanup.CleanUp()
		os.Exit(0)
	}()

	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
