package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"critico-backend/internal/config"
)

var dbInstance *gorm.DB

// InitDBFromConfig opens the Postgres connection described by the loaded
// configuration and configures the pool.
func InitDBFromConfig(cfg *config.APIConfig) error {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.Username, cfg.DB.Password.Resolve(),
		cfg.DB.Name, cfg.DB.SSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)

	dbInstance = conn
	return nil
}

// SetDB replaces the active connection. Used by tests to point the
// repositories at an in-memory database.
func SetDB(conn *gorm.DB) {
	dbInstance = conn
}

// GetDB returns the active connection.
func GetDB() *gorm.DB {
	return dbInstance
}
