package model

import "database/sql"

// Address mirrors the `addresses` table. An address belongs to exactly one
// contact and is only reachable through it.
type Address struct {
	ID         uint64         // addresses.id
	Street     sql.NullString // addresses.street (nullable)
	City       sql.NullString // addresses.city (nullable)
	Province   sql.NullString // addresses.province (nullable)
	Country    string         // addresses.country
	PostalCode string         // addresses.postal_code
	ContactID  uint64         // addresses.contact_id (owner contact)
}

// AddressResponse is the external shape of an address.
type AddressResponse struct {
	ID         uint64 `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// ToAddressResponse maps an address record to its response shape.
func ToAddressResponse(a Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street.String,
		City:       a.City.String,
		Province:   a.Province.String,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
