package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres and migrates the token table.
func Open(dsn string) (*gorm.DB, error) {
	return open(postgres.Open(dsn))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := conn.AutoMigrate(&TokenRow{}); err != nil {
		return nil, fmt.Errorf("migrate token_records: %w", err)
	}
	return conn, nil
}
