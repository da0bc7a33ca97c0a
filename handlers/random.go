// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/message-pool/cliparse"
	"github.com/danielhkuo/message-pool/db"
	"github.com/danielhkuo/message-pool/identity"
	"github.com/danielhkuo/message-pool/middleware"
	"github.com/danielhkuo/message-pool/models"
)

type RandomHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRandomHandler(db *sql.DB, cfg cliparse.Config) *RandomHandler {
	return &RandomHandler{db: db, cfg: cfg}
}

// DrawMessage handles GET /random
//
// Drawing is a read with a write side effect: when the drawn message has
// a sender other than the caller, an unread notification is queued for
// that sender. The response never includes the sender id.
func (h *RandomHandler) DrawMessage(w http.ResponseWriter, r *http.Request) {
	if err := db.EnsureSchema(h.db, h.cfg.DatabaseType); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Uniform selection is delegated entirely to the store.
	var msg models.Message
	err := h.db.QueryRow(`
		SELECT id, content, sender_id, created_at
		FROM messages
		ORDER BY RANDOM()
		LIMIT 1
	`).Scan(&msg.ID, &msg.Content, &msg.SenderID, &msg.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "the message pool is empty")
		return
	}
	if err != nil {
		slog.Error("failed to draw message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	callerID := identity.ClientID(r)

	// No self-notification: drawing your own message stays silent.
	if msg.SenderID != nil && *msg.SenderID != callerID {
		_, err = h.db.Exec(`
			INSERT INTO notifications (recipient_client_id, message_id, created_at)
			VALUES ($1, $2, $3)
		`, *msg.SenderID, msg.ID, time.Now().UTC())

		if err != nil {
			slog.Error("failed to insert notification", "error", err, "message_id", msg.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record draw")
			return
		}
	}

	slog.Info("message drawn", "message_id", msg.ID, "notified", msg.SenderID != nil && *msg.SenderID != callerID)

	middleware.JSONResponse(w, http.StatusOK, models.RandomMessageResponse{
		Message: models.RandomMessage{
			ID:        msg.ID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		},
	})
}
