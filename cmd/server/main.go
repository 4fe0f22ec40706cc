package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	httpadapter "primordia/internal/adapter/http"
	metricsinmem "primordia/internal/adapter/metrics/inmemory"
	gormrepo "primordia/internal/adapter/repo/gorm"
	memrepo "primordia/internal/adapter/repo/memory"
	"primordia/internal/adapter/ws"
	"primordia/internal/app/observe"
	"primordia/internal/app/ports"
	"primordia/internal/app/replay"
	"primordia/internal/app/round"
	"primordia/internal/app/setup"
	"primordia/internal/app/trait"
	"primordia/internal/domain/evolution"
)

type repos struct {
	games ports.GameRepository
	rooms ports.RoomRepository
	log   ports.ActionLogRepository
	tx    ports.TxManager
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	viper.SetEnvPrefix("PRIMORDIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("api-addr", ":8080")
	viper.SetDefault("ws-addr", ":8081")
	viper.SetDefault("start-food", setup.DefaultConfig().StartFood)
	viper.SetDefault("starter-animals", setup.DefaultConfig().StarterAnimals)

	r := mustBuildRepos(logger)
	kpiRecorder := metricsinmem.NewRecorder()
	catalog := evolution.DefaultCatalog()

	hub := ws.NewHub(logger)
	hub.Traits = trait.UseCase{
		TxManager: r.tx,
		Games:     r.games,
		Rooms:     r.rooms,
		Log:       r.log,
		Broadcast: hub,
		Metrics:   kpiRecorder,
		Catalog:   catalog,
		Now:       time.Now,
	}
	hub.Rounds = round.UseCase{
		TxManager: r.tx,
		Games:     r.games,
		Rooms:     r.rooms,
		Log:       r.log,
		Broadcast: hub,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		SetupUC: setup.UseCase{
			TxManager: r.tx,
			Games:     r.games,
			Rooms:     r.rooms,
			Config: setup.Config{
				StartFood:      viper.GetInt("start-food"),
				StarterAnimals: viper.GetInt("starter-animals"),
			},
			Now: time.Now,
		},
		ObserveUC: observe.UseCase{Games: r.games, Rooms: r.rooms},
		ReplayUC:  replay.UseCase{Log: r.log},
		Gateway:   hub,
		KPI:       func() any { return kpiRecorder.Snapshot() },
	}

	apiAddr := viper.GetString("api-addr")
	wsAddr := viper.GetString("ws-addr")

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		s := server.Default(server.WithHostPorts(apiAddr))
		h.RegisterRoutes(s)
		logger.Info("api server listening", "addr", apiAddr)
		s.Spin()
		return nil
	})

	g.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/ws", ws.AcceptHandler{Hub: hub})
		logger.Info("ws server listening", "addr", wsAddr)
		return http.ListenAndServe(wsAddr, mux)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func mustBuildRepos(logger *slog.Logger) repos {
	dsn := strings.TrimSpace(viper.GetString("db-dsn"))
	if dsn == "" {
		logger.Info("no PRIMORDIA_DB_DSN set, using in-memory store")
		store := memrepo.NewStore()
		return repos{
			games: memrepo.NewGameRepo(store),
			rooms: memrepo.NewRoomRepo(store),
			log:   memrepo.NewActionLogRepo(store),
			tx:    memrepo.TxManager{},
		}
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		logger.Error("open postgres failed", "err", err)
		os.Exit(1)
	}
	if err := gormrepo.AutoMigrate(context.Background(), db); err != nil {
		logger.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	return repos{
		games: gormrepo.NewGameRepo(db),
		rooms: gormrepo.NewRoomRepo(db),
		log:   gormrepo.NewActionLogRepo(db),
		tx:    gormrepo.NewTxManager(db),
	}
}
