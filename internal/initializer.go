package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/mailer"
	"expense-tracker/internal/managers"
	"expense-tracker/internal/routing"
	"expense-tracker/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	envFile         = ".env"
	shutdownTimeout = 10 * time.Second
)

// Init starts the API server and blocks until it is interrupted.
func Init() {
	cfg := loadConfig()
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool := initializeDatabase(ctx, cfg.DB)
	defer pool.Close()

	if err := migrations.Migrate(ctx, stdlib.OpenDBFromPool(pool)); err != nil {
		log.Fatal("error migrating database: ", err)
	}
	log.Info("Applied database migrations")

	// Initialize database manager
	databaseMgr := managers.NewDatabaseManager(pool)

	// Initialize JWT manager
	jwtMgr, err := managers.NewJWTManagerFromFile(cfg.JWT.KeyPairPath, cfg.JWT.Issuer,
		time.Duration(cfg.JWT.ValidityDays)*24*time.Hour)
	if err != nil {
		log.Fatal("error initializing JWT manager: ", err)
	}

	// Initialize queue manager
	queueMgr, err := managers.NewQueueManager(cfg.Queue.URL, cfg.Queue.RegistrationMail)
	if err != nil {
		log.Fatal("error initializing queue manager: ", err)
	}
	defer func() {
		if err := queueMgr.Close(); err != nil {
			log.Warn("error closing queue manager: ", err)
		}
	}()

	// Initialize router
	r := routing.InitRouter(databaseMgr, jwtMgr, queueMgr, cfg)
	log.Info("Initialized router")

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server: ", err)
		}
	}()

	log.Infof("Starting server on port %s...", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Error starting server: ", err)
	}
}

// InitMailer starts the mailer worker and blocks until it is interrupted.
func InitMailer() {
	cfg := loadConfig()
	if err := cfg.ValidateMailer(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailMgr := managers.NewMailManager(cfg)

	subscription, err := mailer.Subscribe(cfg.Queue.URL, cfg.Queue.RegistrationMail)
	if err != nil {
		log.Fatal("error subscribing to mail queue: ", err)
	}
	defer func() {
		if err := subscription.Close(); err != nil {
			log.Warn("error closing mail subscription: ", err)
		}
	}()

	log.Info("Mailer waiting for messages")
	if err := mailer.NewConsumer(mailMgr).Run(ctx, subscription.Deliveries); err != nil {
		log.Error("mailer stopped: ", err)
		return
	}
	log.Info("Mailer shutting down...")
}

func loadConfig() *config.Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	setLogLevel(cfg.LogLevel)
	return cfg
}

func initializeDatabase(ctx context.Context, db config.DB) *pgxpool.Pool {
	log.Info("Initializing database")

	url := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		db.Host, db.Port, db.User, db.Password, db.Name)
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Fatal("error configuring database: ", err)
	}

	poolConfig.MinConns = db.MinConns
	poolConfig.MaxConns = db.MaxConns
	poolConfig.MaxConnIdleTime = time.Minute * 2
	poolConfig.HealthCheckPeriod = time.Minute * 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatal("error connecting to database: ", err)
	}
	log.Info("Connected to database")
	return pool
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
