package infra

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const seedAdminUsername = "admin"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS book_donations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		book_title TEXT NOT NULL,
		description TEXT,
		date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS volunteer_applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		area_of_interest TEXT NOT NULL,
		bio TEXT,
		resume_path TEXT,
		date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);`,
}

// OpenDB opens the SQLite database file referenced by the configuration.
func OpenDB(cfg *Config) (*sql.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates the submission tables when absent and seeds the single
// admin credential row. Safe to run on every process start.
func Migrate(ctx context.Context, db *sql.DB, adminPassword string) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM admin_users WHERE username = ?`, seedAdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("check admin seed: %w", err)
	}
	if count == 0 {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO admin_users (username, password) VALUES (?, ?)`,
			seedAdminUsername, adminPassword); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	}
	return nil
}
