// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
Message Pool API.

# Wire Format

All API payloads use camelCase JSON keys (createdAt, messageId) to match
the public contract. Sender identities are never serialized: Message and
Notification carry the sender/recipient ids for storage code, but both
fields are tagged `json:"-"`.

# Limits

  - MaxContentLength: 2000 code points per message, post-trim
  - FeedLimit: 20 notifications per feed call
*/
package models
