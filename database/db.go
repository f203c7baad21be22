package database

import (
	"context"
	"fmt"
	"log/slog"

	"storehub/internal/api/models"
	"storehub/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens a pgx connection pool against Postgres and wraps it
// in a gorm handle for the repository layer.
func ConnectDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to open gorm handle: %w", err)
	}

	if err := migrateSchema(db); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, pool, nil
}

func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Supplier{},
		&models.Product{},
		&models.StockMovement{},
		&models.Discount{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Comment{},
	)
}
