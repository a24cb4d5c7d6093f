package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	"github.com/aaravmahajanofficial/pod-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/pod-storefront/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/lib/pq"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("order status changed concurrently")
)

type Repository struct {
	DB *sql.DB
}

type Repositories struct {
	Products      ProductRepository
	Carts         CartStore
	Orders        OrderRepository
	Subscribers   SubscriberRepository
	Notifications NotificationRepository
}

func New(cfg *config.Config) (*Repository, *Repositories, error) {
	db, err := telemetry.OpenDB("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	return &Repository{DB: db}, NewRepositories(db), nil
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Products:      NewProductRepo(db),
		Carts:         NewPostgresCartStore(db),
		Orders:        NewOrderRepo(db),
		Subscribers:   NewSubscriberRepo(db),
		Notifications: NewNotificationRepo(db),
	}
}

// RunMigrations applies the embedded schema. Already-applied versions are skipped.
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Database schema is up to date", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
