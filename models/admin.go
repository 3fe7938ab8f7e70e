package models

import "time"

// Admin represents an administrator account. Admins live in a separate
// identity namespace from users: the same username or email may exist in
// both tables, and admin credentials never authenticate user routes.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// Password stores the bcrypt digest. Never serialized to JSON.
	Password string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
