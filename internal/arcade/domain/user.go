package domain

import "time"

// User is a registered player. Usernames are case-sensitive, unique and
// never change after registration.
type User struct {
	ID           string // ULID assigned at registration
	Username     string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
}
