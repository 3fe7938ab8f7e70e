package models

import "time"

// User represents an end-user account in its own identity namespace.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique account name within the user namespace.
	Username string `json:"username"`

	// Email is the unique email address within the user namespace.
	// Used as the login identifier during authentication.
	Email string `json:"email"`

	// Password stores the bcrypt digest of the user's password.
	// Never serialized to JSON; only the derived digest is ever held
	// here, never plaintext.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
