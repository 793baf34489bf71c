package entity

import "time"

// Session maps an opaque bearer token to the user it authenticates.
// Possession of the token is the sole credential: sessions carry no expiry,
// only an issued-at timestamp so that expiry can be added later without
// changing the resolve contract.
type Session struct {
	Token     string    // Opaque random token (UUIDv4)
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Issue time
}
