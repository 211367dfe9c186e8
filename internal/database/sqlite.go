// Package database provides SQLite persistence for user records.
package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) *SQLiteStore {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("failed to connect to database: %v\n", err)
	}

	if err := initSchema(db); err != nil {
		log.Fatalf("failed to init database: %v\n", err)
	}

	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	return initTable(db, "users", `
		CREATE TABLE IF NOT EXISTS users (
			id                TEXT PRIMARY KEY,
			provider_subject  TEXT UNIQUE,
			email             TEXT,
			name              TEXT,
			avatar_url        TEXT,
			created_at        INTEGER
		);`,
	)
}

func initTable(
	db *sql.DB,
	name string,
	sql string,
) error {
	if _, err := db.Exec(sql); err != nil {
		return fmt.Errorf("failed to init '%s' table schema: %v", name, err)
	}
	return nil
}
