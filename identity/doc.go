// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity handles the pseudonymous client id.

Every browser generates its own opaque id and persists it redundantly in
a cookie and localStorage (each self-heals the other). The server only
ever reads the cookie:

	clientID := identity.ClientID(r) // "" when absent

The id correlates a browser with its submitted messages and pending
notifications. It is not authenticated - anyone can present any id, and
clearing storage creates a fresh identity.
*/
package identity
