// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxContentLength is the longest message content accepted, counted in
// Unicode code points after trimming.
const MaxContentLength = 2000

// FeedLimit caps how many unread notifications a single feed call returns.
const FeedLimit = 20

// Request types

type SubmitMessageRequest struct {
	Content string `json:"content"`
}

// Response types

type SubmitMessageResponse struct {
	OK        bool      `json:"ok"`
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type RandomMessageResponse struct {
	Message RandomMessage `json:"message"`
}

// RandomMessage omits the sender id so the drawer never learns who
// wrote the message.
type RandomMessage struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationsResponse struct {
	Notifications []NotificationItem `json:"notifications"`
}

type NotificationItem struct {
	ID        int64     `json:"id"`
	MessageID int64     `json:"messageId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Domain types

type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	SenderID  *string   `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"createdAt"`
}

type Notification struct {
	ID                int64      `json:"id"`
	RecipientClientID string     `json:"-"` // Never expose in JSON
	MessageID         int64      `json:"messageId"`
	CreatedAt         time.Time  `json:"createdAt"`
	ReadAt            *time.Time `json:"readAt,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
