package database

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/mfialho/dietlog-backend/internal/database/migrations"
)

// Connect opens the relational store for the given driver and runs pending
// migrations. The returned handle is passed explicitly to every component
// that needs it; there is no package-level connection.
func Connect(driver, uri string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, uri)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := Migrate(db, driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies the embedded schema migrations. Each migration is a
// create-table up with a matching drop-table down; there is no data
// migration logic.
func Migrate(db *sqlx.DB, driver string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(driver); err != nil {
		return err
	}
	return goose.Up(db.DB, ".")
}
