package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"

	_ "github.com/juwono136/go-user-service/docs" // Swagger docs (generated)
	"github.com/juwono136/go-user-service/internal/auth"
	"github.com/juwono136/go-user-service/internal/config"
	"github.com/juwono136/go-user-service/internal/database"
	"github.com/juwono136/go-user-service/internal/email"
	httpServer "github.com/juwono136/go-user-service/internal/http"
	"github.com/juwono136/go-user-service/internal/logging"
	"github.com/juwono136/go-user-service/internal/user"
)

// @title           Go User Service
// @version         1.0
// @description     User account service for the to-do app: signup with email activation, signin with access/refresh tokens, and profile management.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	userRepo := user.NewRepository(db)

	tokenService, err := auth.NewTokenService(
		cfg.Auth.ActivationTokenKey,
		cfg.Auth.AccessTokenKey,
		cfg.Auth.RefreshTokenKey,
		cfg.Auth.ActivationTokenDuration,
		cfg.Auth.AccessTokenDuration,
		cfg.Auth.RefreshTokenDuration,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	hasher := auth.NewPasswordHasher(auth.DefaultHashCost)

	emailService := email.NewService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
	)

	activation := auth.NewActivation(userRepo, tokenService, hasher)

	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
	accountService := auth.NewService(
		userRepo,
		activation,
		tokenService,
		hasher,
		emailService,
		logger,
		serverURL,
	)

	userHandler := auth.NewHandler(
		accountService,
		!cfg.Server.IsDevelopment(), // isProduction
		cfg.Server.ClientURL,
		cfg.Auth.RefreshTokenDuration,
	)
	authMiddleware := auth.NewMiddleware(tokenService)

	router := httpServer.NewRouter(cfg, userHandler, authMiddleware, logger)

	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB initializes the database connection and returns a Bun DB instance.
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}
