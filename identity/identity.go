// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the pseudonymous client id. The web
// client mirrors the same value under this key in localStorage.
const CookieName = "mp_client_id"

// CookieMaxAge is roughly ten years. The id is meant to outlive sessions;
// losing it orphans prior messages from notification delivery.
const CookieMaxAge = 3650 * 24 * time.Hour

// ClientID returns the caller's pseudonymous client id, or "" when the
// cookie is absent. The id is client-generated and unauthenticated; it is
// a correlation key, not a credential.
func ClientID(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// NewClientID mints a fresh client id. Browsers generate their own ids;
// this exists for tests and non-browser clients.
func NewClientID() string {
	return uuid.NewString()
}

// NewCookie builds the long-lived identity cookie the same way the web
// client does.
func NewCookie(clientID string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    clientID,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
}
