package models

import "time"

// Address type choices.
const (
	AddressTypeHome    = "HOME"
	AddressTypeInvoice = "INVOICE"
	AddressTypePost    = "POST"
	AddressTypeWork    = "WORK"
)

// AddressTypes lists the valid address_type values.
var AddressTypes = []string{AddressTypeHome, AddressTypeInvoice, AddressTypePost, AddressTypeWork}

// UserAddressDB represents a row in the users_addresses table.
// The owning user is implied by the URL path and never serialized.
type UserAddressDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key
	UserID         int64     `json:"-" db:"user_id"`                       // Owning user, not exposed in JSON
	AddressType    string    `json:"address_type" db:"address_type"`       // HOME, INVOICE, POST or WORK
	ValidFrom      time.Time `json:"valid_from" db:"valid_from"`           // Instant the address becomes valid
	PostCode       string    `json:"post_code" db:"post_code"`             // Postal code
	City           string    `json:"city" db:"city"`                       // City name
	CountryCode    string    `json:"country_code" db:"country_code"`       // ISO-like country code
	Street         string    `json:"street" db:"street"`                   // Street name
	BuildingNumber string    `json:"building_number" db:"building_number"` // Building number
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
