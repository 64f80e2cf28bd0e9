package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	"essentia-backend/internal/config"
	"essentia-backend/internal/jobs"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository/postgres"
	"essentia-backend/internal/scheduler"
	"essentia-backend/internal/service"
	"essentia-backend/internal/sheets"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (send-interview-reminders, sync-member-roster, all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Essentia Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(cfg.Mail.SendGridAPIKey, service.MailSettings{
		From:              cfg.Mail.From,
		FromName:          cfg.Mail.FromName,
		OperationsMailbox: cfg.Mail.OperationsMailbox,
		MeetingURL:        cfg.Mail.MeetingURL,
		AppBaseURL:        cfg.Mail.AppBaseURL,
	})

	deps := jobs.Dependencies{
		Applicants: store.ApplicantRepository,
		Members:    store.MemberRepository,
		Email:      emailSvc,
		Clock:      clockwork.NewRealClock(),
	}
	if cfg.Sheets.SpreadsheetID != "" {
		var opts []option.ClientOption
		if cfg.Sheets.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
		}
		roster, err := sheets.NewRosterExporter(context.Background(), cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize roster exporter: %v", err)
		}
		deps.Roster = roster
	}

	jobRunner := jobs.NewJobRunner(deps, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := jobRunner.Run(*runOnce); err != nil {
			logger.Error("Unknown job name", "job", *runOnce)
			fmt.Printf("Available jobs:\n")
			fmt.Printf("  - %s\n", jobs.JobSendInterviewReminders)
			fmt.Printf("  - %s\n", jobs.JobSyncMemberRoster)
			fmt.Printf("  - %s\n", jobs.JobAll)
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}
