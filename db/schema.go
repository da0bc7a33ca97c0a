// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
)

var (
	ensureMu    sync.Mutex
	schemaReady bool
)

// EnsureSchema creates the schema on the first successful call in the
// process lifetime. Safe to call before every query; after one success
// it is a cheap no-op. A failed bootstrap is retried by the next caller.
func EnsureSchema(db *sql.DB, driver string) error {
	ensureMu.Lock()
	defer ensureMu.Unlock()

	if schemaReady {
		return nil
	}
	if err := CreateSchema(db, driver); err != nil {
		return err
	}
	schemaReady = true
	return nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "sqlite" or "postgres".
func CreateSchema(db *sql.DB, driver string) error {
	switch driver {
	case "postgres":
		if _, err := db.Exec(schemaPostgres); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	case "sqlite":
		if _, err := db.Exec(schemaSQLite); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		// SQLite has no ADD COLUMN IF NOT EXISTS; tolerate the column
		// already being there on a table created before sender ids existed.
		if _, err := db.Exec(`ALTER TABLE messages ADD COLUMN sender_id TEXT`); err != nil {
			if !strings.Contains(err.Error(), "duplicate column name") {
				return fmt.Errorf("failed to migrate messages table: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported database type: %q", driver)
	}

	return nil
}

const schemaPostgres = `
-- Messages
CREATE TABLE IF NOT EXISTS messages (
    id BIGSERIAL PRIMARY KEY,
    content TEXT NOT NULL,
    sender_id TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Older deployments created messages without attribution
ALTER TABLE messages ADD COLUMN IF NOT EXISTS sender_id TEXT;

-- Notifications
CREATE TABLE IF NOT EXISTS notifications (
    id BIGSERIAL PRIMARY KEY,
    recipient_client_id TEXT NOT NULL,
    message_id BIGINT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    read_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_client_id, read_at);
CREATE INDEX IF NOT EXISTS idx_notifications_message_id ON notifications(message_id);
`

const schemaSQLite = `
-- Messages
CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    sender_id TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Notifications
CREATE TABLE IF NOT EXISTS notifications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recipient_client_id TEXT NOT NULL,
    message_id INTEGER NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL,
    read_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_client_id, read_at);
CREATE INDEX IF NOT EXISTS idx_notifications_message_id ON notifications(message_id);
`
