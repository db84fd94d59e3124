package model

import "database/sql"

// Contact mirrors the `contacts` table. Ownership is by username and never
// changes after creation.
type Contact struct {
	ID        uint64         // contacts.id
	FirstName string         // contacts.first_name
	LastName  sql.NullString // contacts.last_name (nullable)
	Email     sql.NullString // contacts.email (nullable)
	Phone     sql.NullString // contacts.phone (nullable)
	Username  string         // contacts.username (owner)
}

// ContactResponse is the external shape of a contact.
type ContactResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ToContactResponse maps a contact record to its response shape.
func ToContactResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName.String,
		Email:     c.Email.String,
		Phone:     c.Phone.String,
	}
}
