package main

import (
	"insightd/internal/config"
	"insightd/internal/infra/db"
	httpinfra "insightd/internal/infra/http"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.FromEnv()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store, err := db.NewStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to init store")
	}
	if store.DB == nil {
		log.Warn("POSTGRES_DSN not set, running without a store")
	}

	srv := httpinfra.NewServer(cfg, store, log)
	log.WithFields(logrus.Fields{
		"addr":      cfg.HTTPAddr,
		"auth_mode": cfg.AuthMode,
	}).Info("starting server")
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
