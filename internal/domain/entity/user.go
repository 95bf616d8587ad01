// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in and own recipes.
type User struct {
	ID           int64     // System-assigned identifier.
	Username     string    `validate:"required"` // Unique login name.
	PasswordHash string    // bcrypt hash of the password. Never leaves the service.
	ImageURL     *string   // Optional avatar URL.
	Bio          *string   // Optional free-form biography.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// PasswordHasher is the subset of the hashing service the entity needs to
// maintain its own password hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SetPassword re-hashes password and stores the result on the user.
func (u *User) SetPassword(hasher PasswordHasher, password string) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	return nil
}
