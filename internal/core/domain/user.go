package domain

import "time"

// User models a registered account. The password is never stored in
// plaintext; only the bcrypt hash is persisted.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
