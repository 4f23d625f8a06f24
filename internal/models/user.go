package models

import "time"

// User is a registered account. Audit history is owned per user; anonymous
// visitors fall back to the local history cache instead.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name,omitempty"`
	HashedPassword []byte     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}
