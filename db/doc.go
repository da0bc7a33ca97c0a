// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

Handlers call EnsureSchema before touching the store, so the schema
exists no matter which request arrives first after boot:

	if err := db.EnsureSchema(conn, cfg.DatabaseType); err != nil {
		// fail the request
	}

The first successful call latches a process-wide flag; later calls are
no-ops. CreateSchema does the actual DDL and is safe to call multiple
times - it uses IF NOT EXISTS throughout and tolerates re-running the
sender_id column migration.

# Tables

  - messages: submitted content with optional sender attribution
  - notifications: pending "your message was drawn" records

# Relationships

	messages 1──* notifications (ON DELETE CASCADE)

# Drivers

Both supported engines get their own DDL flavor:

  - sqlite (modernc.org/sqlite): INTEGER PRIMARY KEY AUTOINCREMENT,
    migration via bare ADD COLUMN with the duplicate-column error ignored
  - postgres (lib/pq): BIGSERIAL, TIMESTAMPTZ with NOW() defaults,
    ADD COLUMN IF NOT EXISTS
*/
package db
