package main

import (
	"context"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/handler"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/mailer"
	"github.com/kmolchanov/feedback-service/internal/server"
	"github.com/kmolchanov/feedback-service/internal/service"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("feedback-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	mail := newMailer(cfg.Mail, log)

	services := service.NewServices(storages, *cfg, mail, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newMailer returns the SMTP mailer when a host is configured and a no-op
// mailer otherwise, so the service runs without a mail relay in local
// development.
func newMailer(cfg config.Mail, log *logger.Logger) mailer.Mailer {
	if cfg.Host == "" {
		log.Info().Msg("no mail host configured, outgoing mail is disabled")
		return mailer.NopMailer{}
	}

	smtp, err := mailer.NewSMTPMailer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}
	return smtp
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
