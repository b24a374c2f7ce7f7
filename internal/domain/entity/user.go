// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the system. Username and email are
// globally unique; the password is only ever held as a bcrypt hash.
type User struct {
	ID           int64     // Numeric identifier assigned by the database.
	Username     string    // Unique login name, at most 20 characters.
	Email        string    // Unique contact address, at most 200 characters.
	PasswordHash string    // Bcrypt hash of the password. Never the plaintext.
	Verified     bool      // Flips from false to true exactly once, on email verification.
	JoinDate     time.Time // Timestamp of registration, set by the database.
}
