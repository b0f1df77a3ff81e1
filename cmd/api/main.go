package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloglist/internal/api"
	"bloglist/internal/auth"
	"bloglist/internal/config"
	"bloglist/internal/db"
	"bloglist/internal/logger"
	"bloglist/internal/metrics"
	"bloglist/internal/repository/mongodb"
	"bloglist/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("mongo connect", "err", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	database := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, database); err != nil {
		log.Error("ensure indexes", "err", err)
		os.Exit(1)
	}

	repos := mongodb.NewRepositories(database)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := services.NewUserService(repos.Users)
	loginSvc := services.NewLoginService(repos.Users, tm)
	blogSvc := services.NewBlogService(repos.Blogs, repos.Users)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:      cfg,
		TM:       tm,
		Users:    repos.Users,
		UserSvc:  userSvc,
		LoginSvc: loginSvc,
		BlogSvc:  blogSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
