package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/catalog"
	"github.com/umarsaeed-beep/clothing-project/internal/config"
	"github.com/umarsaeed-beep/clothing-project/internal/server"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadServer()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	repo, err := buildCatalog(cfg)
	if err != nil {
		log.WithError(err).Fatal("could not set up catalog")
	}
	defer repo.Close()

	router := server.NewRouter(server.Options{
		Catalog:        repo,
		ContactLog:     server.NewRecordLog(cfg.ContactsFile),
		OrderLog:       server.NewRecordLog(cfg.OrdersFile),
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
		Log:            log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}

func buildCatalog(cfg config.Server) (catalog.Repository, error) {
	if cfg.CatalogDB == "" {
		return catalog.NewFileRepository(cfg.CatalogFile), nil
	}

	repo, err := catalog.NewSQLiteRepository(cfg.CatalogDB)
	if err != nil {
		return nil, err
	}
	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}
