package models

import "time"

// Session is the server-side row backing one opaque session token. Deleting
// the row is what makes logout stick; the cookie alone proves nothing.
type Session struct {
	Token     string
	AccountID int64
	ExpiresAt time.Time
	CreatedAt time.Time
}
