// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Message Pool API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - MessageHandler: message submission
  - RandomHandler: uniform random draws
  - NotificationHandler: the unread-notification feed

Handlers are created via constructor functions that accept *sql.DB and Config:

	msgHandler := handlers.NewMessageHandler(db, cfg)

Every handler calls db.EnsureSchema before touching the store, so the
schema exists regardless of which request arrives first.

# API Surface

	POST /messages      → SubmitMessage (400 empty, 413 over 2000 chars)
	GET  /random        → DrawMessage (404 on empty pool)
	GET  /notifications → GetNotifications (empty list without identity)

# Identity

Callers are correlated by the pseudonymous mp_client_id cookie (see the
identity package). Submissions store it as the sender id; draws compare
it against the drawn message's sender to suppress self-notifications;
the feed uses it as the recipient key. The sender id of a drawn message
is never returned to the drawer.
*/
package handlers
