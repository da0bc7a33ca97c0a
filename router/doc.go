// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires the three API handlers plus a health check onto a
standard ServeMux using Go 1.22+ method routing, and serves the embedded
web client at the root:

	POST /messages      → submit a message
	GET  /random        → draw one at random
	GET  /notifications → drain the caller's unread feed
	GET  /health        → liveness probe
	GET  /              → browser client (embedded assets)
*/
package router
