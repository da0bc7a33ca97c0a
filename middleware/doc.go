// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler with start/completion slog lines, tagging
both with a per-request uuid:

	mux.HandleFunc("POST /messages", middleware.WithLogging(h.SubmitMessage))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right headers;
ParseJSONBody decodes a request body. Error bodies follow
models.ErrorResponse: {"error": "Bad Request", "message": "..."}.

# CORS

CORS reflects the request Origin and answers preflights, which lets a
separately-served dev frontend talk to the API with credentials.
*/
package middleware
