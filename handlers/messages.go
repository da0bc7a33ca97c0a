// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/message-pool/cliparse"
	"github.com/danielhkuo/message-pool/db"
	"github.com/danielhkuo/message-pool/identity"
	"github.com/danielhkuo/message-pool/middleware"
	"github.com/danielhkuo/message-pool/models"
)

type MessageHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMessageHandler(db *sql.DB, cfg cliparse.Config) *MessageHandler {
	return &MessageHandler{db: db, cfg: cfg}
}

// SubmitMessage handles POST /messages
func (h *MessageHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	if err := db.EnsureSchema(h.db, h.cfg.DatabaseType); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// A malformed body is treated the same as an empty content field.
	var req models.SubmitMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		req.Content = ""
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content cannot be empty")
		return
	}
	if utf8.RuneCountInString(content) > models.MaxContentLength {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "content too long (max 2000 characters)")
		return
	}

	// Sender attribution is optional: anonymous submissions simply never
	// receive draw notifications.
	var senderID *string
	if id := identity.ClientID(r); id != "" {
		senderID = &id
	}

	createdAt := time.Now().UTC()

	var messageID int64
	err := h.db.QueryRow(`
		INSERT INTO messages (content, sender_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, content, senderID, createdAt).Scan(&messageID)

	if err != nil {
		slog.Error("failed to insert message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	slog.Info("message submitted", "message_id", messageID, "has_sender", senderID != nil)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitMessageResponse{
		OK:        true,
		ID:        messageID,
		CreatedAt: createdAt,
	})
}
