package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidchat/internal/model"
)

// PoolConfig bounds the connection pool behind the GORM handle.
type PoolConfig struct {
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string, pool PoolConfig) (*gorm.DB, error) {
	db, err := Open(mysql.Open(dsn))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnLifetime)
	}
	return db, nil
}

// Open wraps gorm.Open with the settings every caller shares.
// Driver errors are translated so duplicate keys surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Transcript{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops the tables owned by this service. Migrate recreates them.
func Reset(db *gorm.DB) error {
	for _, table := range []interface{}{&model.Transcript{}, &model.User{}} {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

// Close drains the pool. Safe to call with a nil handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
