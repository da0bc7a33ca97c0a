// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the browser client served at the site root.
package web

import "embed"

// FS exposes the client assets for HTTP serving.
//
//go:embed index.html app.js style.css
var FS embed.FS
