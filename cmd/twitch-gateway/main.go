package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	twitchClient "twitch_gateway/internal/client/twitch-client"
	"twitch_gateway/internal/config"
	"twitch_gateway/internal/middleware"

	twitchHandler "twitch_gateway/internal/handlers/twitch"

	twitchService "twitch_gateway/internal/service/twitch"

	dbRepository "twitch_gateway/db/repository"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}

	logrus.SetLevel(cfg.LogLevel)

	opts := []twitchClient.Option{
		twitchClient.WithIDHost(cfg.TwitchIDHost),
		twitchClient.WithAPIHost(cfg.TwitchAPIHost),
	}

	if cfg.DBConn != "" {
		dbRepo, err := dbRepository.Connect(ctx, cfg.DBConn)
		if err != nil {
			logrus.Fatal(err)
		}
		defer dbRepo.Close()

		opts = append(opts, twitchClient.WithTokenStore(dbRepo))
	} else {
		logrus.Info("DB_CONN is empty, twitch token is kept in memory only")
	}

	twc := twitchClient.NewTwitchClient(cfg.TwitchClientID, cfg.TwitchSecret, opts...)

	if cfg.TokenSyncInterval > 0 {
		go twc.SyncBg(ctx, cfg.TokenSyncInterval)
	}

	twitchHandler := twitchHandler.NewTwitchHandler(twitchService.NewService(twc))

	debugRouter := mux.NewRouter()
	debugRouter.Use(middleware.Metrics)

	twitchHandler.RegisterRoutes(debugRouter)
	debugRouter.Handle("/metrics", promhttp.Handler()).Methods("GET")

	srv := &http.Server{
		Handler:      debugRouter,
		Addr:         cfg.DebugAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("server shutdown: %v", err)
		}
	}()

	logrus.Infof("server start on %s...", cfg.DebugAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}

	logrus.Info("server stopped")
}
