package database

import (
	"taskdeck-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the gorm connection. TranslateError is on so
// driver violations (duplicate keys in particular) surface as gorm's typed
// errors instead of pgx error strings.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
