// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// The wire format keeps the original Portuguese field names.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Nome is the user's display name.
	Nome string `gorm:"size:255;not null" json:"nome"`

	// Email is the user's email address used for authentication.
	// The unique index is what turns a duplicate sign-up into a conflict,
	// instead of a racy check-then-insert.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Senha is the bcrypt hash of the user's password.
	// This never stores the plaintext password.
	Senha string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
