package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/contact-management/internal/model"
)

type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Create inserts a contact for its owner and fills in the generated id.
func (r *ContactRepo) Create(ctx context.Context, c *model.Contact) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contacts (first_name, last_name, email, phone, username) VALUES (?,?,?,?,?)",
		c.FirstName, c.LastName, c.Email, c.Phone, c.Username)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a contact scoped to its owner. A contact that
// exists under a different owner is indistinguishable from one that does
// not exist at all.
func (r *ContactRepo) GetByIDAndOwner(ctx context.Context, id uint64, username string) (model.Contact, error) {
	var c model.Contact
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE id=? AND username=? LIMIT 1",
		id, username).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Username)
	if err == sql.ErrNoRows {
		return model.Contact{}, ErrNotFound
	}
	return c, err
}

// Update replaces the mutable fields of a contact, scoped to its owner.
func (r *ContactRepo) Update(ctx context.Context, c model.Contact) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE contacts SET first_name=?, last_name=?, email=?, phone=? WHERE id=? AND username=?",
		c.FirstName, c.LastName, c.Email, c.Phone, c.ID, c.Username)
	return err
}

// Delete removes a contact. Addresses go with it via the FK cascade.
func (r *ContactRepo) Delete(ctx context.Context, id uint64, username string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM contacts WHERE id=? AND username=?", id, username)
	return err
}

// SearchQuery defines filters & pagination for searching contacts. Empty
// filters are omitted from the generated SQL entirely.
type SearchQuery struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Page     int
	Size     int
}

// Search returns one page of the owner's contacts matching all present
// filters, plus the total match count for paging metadata.
func (r *ContactRepo) Search(ctx context.Context, q SearchQuery) ([]model.Contact, int64, error) {
	where := []string{"username = ?"}
	args := []any{q.Username}

	if q.Name != "" {
		where = append(where, "(first_name LIKE ? OR last_name LIKE ?)")
		args = append(args, "%"+q.Name+"%", "%"+q.Name+"%")
	}
	if q.Email != "" {
		where = append(where, "email LIKE ?")
		args = append(args, "%"+q.Email+"%")
	}
	if q.Phone != "" {
		where = append(where, "phone LIKE ?")
		args = append(args, "%"+q.Phone+"%")
	}

	cond := strings.Join(where, " AND ")

	var total int64
	countSQL := "SELECT COUNT(*) FROM contacts WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.Size
	offset := (q.Page - 1) * q.Size

	dataSQL := "SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE " +
		cond + " ORDER BY id ASC LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Contact, 0, limit)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Username); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
