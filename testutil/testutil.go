// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/message-pool/cliparse"
	"github.com/danielhkuo/message-pool/db"
	"github.com/danielhkuo/message-pool/identity"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would get its own :memory: database;
	// a single connection keeps all statements on the same one.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// InsertTestMessage inserts a message and returns its ID.
// An empty senderID stores NULL (an anonymous submission).
func InsertTestMessage(t *testing.T, conn *sql.DB, content, senderID string) int64 {
	t.Helper()

	var sender *string
	if senderID != "" {
		sender = &senderID
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO messages (content, sender_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, content, sender, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test message: %v", err)
	}

	return id
}

// InsertTestNotification inserts an unread notification with an explicit
// creation time (ordering tests need distinct timestamps) and returns its ID.
func InsertTestNotification(t *testing.T, conn *sql.DB, recipientClientID string, messageID int64, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO notifications (recipient_client_id, message_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, recipientClientID, messageID, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test notification: %v", err)
	}

	return id
}

// CountRows returns the number of rows in the given table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithClientID attaches the pseudonymous identity cookie to a request.
func WithClientID(req *http.Request, clientID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: clientID})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
