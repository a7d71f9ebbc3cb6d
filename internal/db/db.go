package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mindcare-backend/internal/config"
)

var gormDB *gorm.DB

// InitDBFromConfig opens the gorm connection using the loaded XML config.
func InitDBFromConfig(cfg *config.APIConfig) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Username,
		cfg.DB.Password.Resolve(),
		cfg.DB.Names.MINDCARE,
		cfg.DB.SSLMode,
		cfg.Context.TimeZone,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("failed to access underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)

	gormDB = conn
}

// GetDB returns the shared gorm handle.
func GetDB() *gorm.DB {
	return gormDB
}

// SetDB swaps the shared handle. Used by tests and the seed tool.
func SetDB(conn *gorm.DB) {
	gormDB = conn
}
