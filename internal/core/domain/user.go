package domain

import (
	"fmt"
	"unicode/utf8"
)

// OwnerID is the fixed primary key of the single owner record.
const OwnerID int64 = 1

const (
	MaxNameLength     = 20
	MaxUsernameLength = 20
)

type User struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"` // bcrypt hashed
}

func NewOwner(name, username, passwordHash string) *User {
	return &User{
		ID:           OwnerID,
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}
}

// ValidateName checks the display name shown on the listing page.
func ValidateName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, MaxNameLength)
	}
	return nil
}

func ValidateUsername(username string) error {
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username must be 1-%d characters", ErrInvalidInput, MaxUsernameLength)
	}
	return nil
}
