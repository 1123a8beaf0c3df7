package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ehsworks/safety-go/internal/application/reminder"
	"github.com/ehsworks/safety-go/internal/config"
	"github.com/ehsworks/safety-go/internal/config/db"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/mailer"
)

// Standalone closure reminder sweep, for deployments that keep background
// work out of the API process.
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	repos := repository.NewRepositories(db.DB)
	mail := mailer.New(mailer.Config{
		Host:        config.SmtpHost,
		Port:        config.SmtpPort,
		User:        config.SmtpUser,
		Password:    config.SmtpPassword,
		From:        config.SmtpFrom,
		AppName:     config.AppName,
		TemplateDir: config.TemplateDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Starting reminder scheduler")
	reminder.New(repos, mail).Run(ctx)
}
