package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/contact-management/internal/model"
)

type AddressRepo struct{ DB *sql.DB }

func NewAddressRepo(db *sql.DB) *AddressRepo { return &AddressRepo{DB: db} }

// Create inserts an address under its contact and fills in the generated id.
func (r *AddressRepo) Create(ctx context.Context, a *model.Address) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO addresses (street, city, province, country, postal_code, contact_id) VALUES (?,?,?,?,?,?)",
		a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ContactID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByIDAndContact fetches an address scoped to its contact. An address id
// that is valid under a different contact does not match.
func (r *AddressRepo) GetByIDAndContact(ctx context.Context, id, contactID uint64) (model.Address, error) {
	var a model.Address
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,street,city,province,country,postal_code,contact_id FROM addresses WHERE id=? AND contact_id=? LIMIT 1",
		id, contactID).Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.ContactID)
	if err == sql.ErrNoRows {
		return model.Address{}, ErrNotFound
	}
	return a, err
}

// Update replaces the fields of an address, scoped to its contact.
func (r *AddressRepo) Update(ctx context.Context, a model.Address) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE addresses SET street=?, city=?, province=?, country=?, postal_code=? WHERE id=? AND contact_id=?",
		a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ID, a.ContactID)
	return err
}

// Delete removes an address, scoped to its contact.
func (r *AddressRepo) Delete(ctx context.Context, id, contactID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM addresses WHERE id=? AND contact_id=?", id, contactID)
	return err
}

// ListByContact returns every address of a contact, no pagination.
func (r *AddressRepo) ListByContact(ctx context.Context, contactID uint64) ([]model.Address, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,street,city,province,country,postal_code,contact_id FROM addresses WHERE contact_id=? ORDER BY id ASC",
		contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Address, 0, 8)
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.ContactID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
