package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"phonebook/contact"
	"phonebook/httpserver"
	"phonebook/pkg/config"
	"phonebook/pkg/logger"
	"phonebook/pkg/sentry"
	"phonebook/storage"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
)

// @title Phonebook API
// @version 1.0
// @description CRUD over phonebook contacts.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := storage.NewContactRepository(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open contact store", "driver", cfg.DB.Driver, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Errorw("cannot close contact store", "error", err)
		}
	}()

	server := httpserver.Default(cfg)
	server.Logger = log
	server.ContactService = contact.NewUsecase(repo)

	go func() {
		log.Infow("server started", "addr", server.Addr, "driver", cfg.DB.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Infow("server stopped")
}
