package database

import (
	"context"
	"fmt"
	"time"

	"employees/inner/common"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// одна и та же DDL подходит для PostgreSQL и MySQL
const employeesSchema = `CREATE TABLE IF NOT EXISTS employees (
	id VARCHAR(8) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	mobile VARCHAR(255) NOT NULL,
	birth_date VARCHAR(255) NOT NULL,
	address TEXT NOT NULL
)`

// Подключиться к базе данных с переданным конфигом
func ConnectDbWithCfg(cfg common.Config, logger *common.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.DriverName(), cfg.Dsn())
	if err != nil {
		logger.Error("Failed to connect to database",
			zap.String("driver", cfg.DriverName()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established successfully",
		zap.String("driver", cfg.DriverName()))

	configurePool(db, logger)
	return db, nil
}

func configurePool(db *sqlx.DB, logger *common.Logger) {
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(1 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	logger.Debug("Database connection pool configured",
		zap.Int("maxIdleConns", 5),
		zap.Int("maxOpenConns", 20),
		zap.Duration("connMaxLifetime", 1*time.Minute),
		zap.Duration("connMaxIdleTime", 10*time.Minute))
}

// ApplySchema создаёт таблицу сотрудников, если её ещё нет
func ApplySchema(ctx context.Context, db *sqlx.DB, logger *common.Logger) error {
	if _, err := db.ExecContext(ctx, employeesSchema); err != nil {
		logger.Error("Failed to apply employees schema", zap.Error(err))
		return fmt.Errorf("failed to apply employees schema: %w", err)
	}
	logger.Info("Employees schema is up to date")
	return nil
}
