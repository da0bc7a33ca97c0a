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

type NotificationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewNotificationHandler(db *sql.DB, cfg cliparse.Config) *NotificationHandler {
	return &NotificationHandler{db: db, cfg: cfg}
}

// GetNotifications handles GET /notifications
//
// Returns up to 20 unread notifications for the calling client, oldest
// first, and marks every returned row as read before responding. A
// caller without an identity cookie gets an empty list.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	if err := db.EnsureSchema(h.db, h.cfg.DatabaseType); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	clientID := identity.ClientID(r)
	if clientID == "" {
		middleware.JSONResponse(w, http.StatusOK, models.NotificationsResponse{
			Notifications: []models.NotificationItem{},
		})
		return
	}

	rows, err := h.db.Query(`
		SELECT n.id, n.message_id, m.content, n.created_at
		FROM notifications n
		JOIN messages m ON m.id = n.message_id
		WHERE n.recipient_client_id = $1
		  AND n.read_at IS NULL
		ORDER BY n.created_at ASC, n.id ASC
		LIMIT $2
	`, clientID, models.FeedLimit)

	if err != nil {
		slog.Error("failed to query notifications", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	items := []models.NotificationItem{}
	for rows.Next() {
		var item models.NotificationItem
		if err := rows.Scan(&item.ID, &item.MessageID, &item.Content, &item.CreatedAt); err != nil {
			slog.Error("failed to scan notification", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read notifications", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	// Release the connection before issuing the updates below.
	rows.Close()

	// Mark read before responding. If the client drops the response these
	// notifications are gone; the feed contract trades durability for a
	// trivially simple pull loop.
	readAt := time.Now().UTC()
	for _, item := range items {
		if _, err := h.db.Exec(`
			UPDATE notifications
			SET read_at = $1
			WHERE id = $2
		`, readAt, item.ID); err != nil {
			slog.Error("failed to mark notification read", "error", err, "notification_id", item.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if len(items) > 0 {
		slog.Info("notifications delivered", "count", len(items))
	}

	middleware.JSONResponse(w, http.StatusOK, models.NotificationsResponse{
		Notifications: items,
	})
}
