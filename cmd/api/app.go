package main

import (
	"database/sql"
	"log/slog"
	"os"

	"payamigo/internal/events"
	"payamigo/internal/helpers"
	"payamigo/internal/repository"
	"payamigo/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
)

type config struct {
	port    string
	env     string
	natsURL string
	db      struct {
		host     string
		port     string
		user     string
		password string
		name     string
	}
}

type application struct {
	config       config
	logger       *slog.Logger
	db           *sql.DB
	nc           *nats.Conn
	users        *service.UserService
	wallets      *service.WalletService
	transactions *service.TransactionService
}

func newApplication() (*application, error) {
	// .env is optional; production relies on real env vars.
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on environment variables")
	}

	cfg := config{}
	cfg.port = helpers.GetEnvAsStr("PORT", "8080")
	cfg.env = helpers.GetEnvAsStr("ENV", "development")
	cfg.natsURL = helpers.GetEnvAsStr("NATS_URL", "")
	cfg.db.host = helpers.GetEnvAsStr("DB_HOST", "postgres")
	cfg.db.port = helpers.GetEnvAsStr("DB_PORT", "5432")
	cfg.db.user = helpers.GetEnvAsStr("DB_USER", "postgres")
	cfg.db.password = helpers.GetEnvAsStr("DB_PASSWORD", "postgres")
	cfg.db.name = helpers.GetEnvAsStr("DB_NAME", "payamigo")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := helpers.OpenDB(helpers.DBConfig{
		Host:     cfg.db.host,
		Port:     cfg.db.port,
		User:     cfg.db.user,
		Password: cfg.db.password,
		Name:     cfg.db.name,
	}, logger)
	if err != nil {
		return nil, err
	}

	var nc *nats.Conn
	var publisher *events.Publisher
	if cfg.natsURL != "" {
		nc, err = nats.Connect(cfg.natsURL)
		if err != nil {
			logger.Warn("NATS unavailable, lifecycle events disabled", "url", cfg.natsURL, "error", err)
		} else {
			publisher = events.NewPublisher(nc, logger)
		}
	}

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		nc:           nc,
		users:        service.NewUserService(repository.NewUserRepository(db), publisher),
		wallets:      service.NewWalletService(repository.NewWalletRepository(db), publisher),
		transactions: service.NewTransactionService(repository.NewTransactionRepository(db), publisher),
	}, nil
}

func (app *application) close() {
	if app.nc != nil {
		app.nc.Close()
	}
	if app.db != nil {
		app.db.Close()
	}
}
