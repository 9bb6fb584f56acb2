package auth

import "time"

// User represents a registered account. PasswordHash never leaves the
// package through API responses.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
