// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key checks and session token generation.

# Admin Keys

Admin endpoints are protected by a single shared password. Clients send it
in the X-Admin-Key header and the server compares it to the stored
password (or the configured one, until an admin changes it):

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), password)

Both values are hashed with SHA-256 and compared with hmac.Equal.
ErrNoAdminPassword means no password is configured; every key is rejected.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

The server issues one with the first ballot from a browser. Submitting
again with the same token replaces that ballot instead of adding a new one.
*/
package auth
