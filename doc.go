// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Message Pool server.

Message Pool is a minimal public message board: anyone can submit a
short text message, anyone can draw one uniformly at random, and the
original sender is notified (via a pseudonymous client id) when their
message is drawn by someone else.

# Starting the Server

With no configuration the server listens on port 3324 against a local
SQLite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flag or env):

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (messages, random, notifications)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - identity: Pseudonymous client-id cookie handling
  - db: Schema creation
  - cliparse: Configuration parsing
  - web: Embedded browser client

See package documentation for each component.
*/
package main
