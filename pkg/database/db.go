package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// Connect opens a postgres connection. TranslateError is enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey instead of raw
// driver errors; repositories rely on that to report conflicts atomically.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		opts.Host,
		opts.User,
		opts.Password,
		opts.Name,
		opts.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}
