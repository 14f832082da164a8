package models

import "time"

// User status choices.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// UserDB represents a row in the users table together with its addresses.
type UserDB struct {
	ID        int64           `json:"id" db:"id"`                 // Primary key
	FirstName string          `json:"first_name" db:"first_name"` // Optional first name
	LastName  string          `json:"last_name" db:"last_name"`   // Required last name
	Initials  string          `json:"initials" db:"initials"`     // Optional initials
	Email     string          `json:"email" db:"email"`           // Unique email
	Status    string          `json:"status" db:"status"`         // ACTIVE or INACTIVE
	Addresses []UserAddressDB `json:"addresses" db:"-"`           // Owned addresses, loaded separately
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Last update timestamp
}
