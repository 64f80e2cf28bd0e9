package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"

	grpcapi "essentia-backend/internal/api/grpc"
	httpapi "essentia-backend/internal/api/http"
	"essentia-backend/internal/config"
	"essentia-backend/internal/identity"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository/postgres"
	"essentia-backend/internal/security"
	"essentia-backend/internal/service"
	"essentia-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Essentia Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx := context.Background()
	clock := clockwork.NewRealClock()

	// Initialize Database
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

	// Identity provider and buckets share one Firebase app
	app, err := identity.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile, "")
	if err != nil {
		log.Fatalf("Failed to initialize firebase: %v", err)
	}
	verifier, err := identity.NewFirebaseVerifier(ctx, app)
	if err != nil {
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}

	objectStore, err := storage.Open(ctx, storage.Config{
		Type:      cfg.Storage.Type,
		UploadDir: cfg.Storage.UploadDir,
		BaseURL:   cfg.Storage.BaseURL,
	}, app)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Object storage ready", "type", cfg.Storage.Type)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute, clock)

	emailSvc := service.NewEmailService(cfg.Mail.SendGridAPIKey, service.MailSettings{
		From:              cfg.Mail.From,
		FromName:          cfg.Mail.FromName,
		OperationsMailbox: cfg.Mail.OperationsMailbox,
		MeetingURL:        cfg.Mail.MeetingURL,
		AppBaseURL:        cfg.Mail.AppBaseURL,
	})

	// Initialize Services
	applicantSvc := service.NewApplicantService(store.UserRepository, store.ApplicantRepository, store.MemberRepository, emailSvc, clock)
	services := httpapi.Services{
		Session:   service.NewSessionService(verifier, tokenManager),
		Applicant: applicantSvc,
		Member: service.NewMemberService(store.UserRepository, store.MemberRepository, applicantSvc, service.CodeBases{
			Officer: cfg.Membership.OfficerCodeBase,
			Member:  cfg.Membership.MemberCodeBase,
		}, clock),
		Profile:      service.NewProfileService(store.UserRepository, store.MemberRepository, store.ApplicantRepository),
		Organization: service.NewOrganizationService(store.OrganizationRepository, store.UserRepository, store.MemberRepository),
		Forum: service.NewForumService(store.ForumRepository, store.UserRepository, store.MemberRepository, service.ForumRules{
			FreeCategory:        cfg.Forum.FreeCategory,
			NonMemberDailyLimit: cfg.Forum.NonMemberDailyLimit,
			DefaultPageSize:     cfg.Forum.DefaultPageSize,
		}, clock),
		Upload: service.NewUploadService(objectStore, store.UserRepository, store.MemberRepository, service.UploadSettings{
			ForumBucket:         cfg.Storage.ForumBucket,
			ProfileBucket:       cfg.Storage.ProfileBucket,
			MaxForumImageMB:     cfg.Storage.MaxForumImageMB,
			MaxProfileImageMB:   cfg.Storage.MaxProfileImageMB,
			ProfileCacheControl: cfg.Storage.ProfileCacheControl,
		}, clock),
	}

	opts := httpapi.Options{
		Tokens:         tokenManager,
		Ping:           db.PingContext,
		MaxUploadBytes: max(cfg.Storage.MaxForumImageMB, cfg.Storage.MaxProfileImageMB) << 20,
	}
	if local, ok := objectStore.(*storage.MockStorageService); ok {
		logger.Info("Serving local uploads", "upload_dir", cfg.Storage.UploadDir)
		opts.LocalStorage = local
	}

	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(services, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health endpoint for probes
	checker := grpcapi.NewHealthChecker(db, clock)
	grpcServer := grpcapi.NewServer(checker)
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go checker.Run(runCtx, 15*time.Second)

	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", "error", err)
		}
	}()

	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	checker.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Server stopped")
}
