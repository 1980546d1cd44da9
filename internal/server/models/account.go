// Package models contains the persistent entities of the Rango Amigo
// server. JSON tags define the wire representation used by the HTTP API.
package models

import "time"

// Account is a registered user. Accounts are created at registration and
// never updated or deleted; the password hash never leaves the server.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
