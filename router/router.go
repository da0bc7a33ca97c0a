// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/message-pool/cliparse"
	"github.com/danielhkuo/message-pool/handlers"
	"github.com/danielhkuo/message-pool/middleware"
	"github.com/danielhkuo/message-pool/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	messageHandler := handlers.NewMessageHandler(db, cfg)
	randomHandler := handlers.NewRandomHandler(db, cfg)
	notificationHandler := handlers.NewNotificationHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Message pool API
	mux.HandleFunc("POST /messages", middleware.WithLogging(messageHandler.SubmitMessage))
	mux.HandleFunc("GET /random", middleware.WithLogging(randomHandler.DrawMessage))
	mux.HandleFunc("GET /notifications", middleware.WithLogging(notificationHandler.GetNotifications))

	// Embedded browser client
	mux.Handle("GET /", http.FileServerFS(web.FS))

	return mux
}
