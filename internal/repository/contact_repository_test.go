package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/contact-management/internal/model"
)

func newContactRepoWithMock(t *testing.T) (*ContactRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewContactRepo(db), mock, db
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "username"})
}

func TestContactCreate_SetsID(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	q := regexp.QuoteMeta("INSERT INTO contacts (first_name, last_name, email, phone, username) VALUES (?,?,?,?,?)")
	mock.ExpectExec(q).
		WithArgs("Aditya", "Ricki", "test@example.com", "1234567890", "test").
		WillReturnResult(sqlmock.NewResult(7, 1))

	c := model.Contact{
		FirstName: "Aditya",
		LastName:  sql.NullString{String: "Ricki", Valid: true},
		Email:     sql.NullString{String: "test@example.com", Valid: true},
		Phone:     sql.NullString{String: "1234567890", Valid: true},
		Username:  "test",
	}
	if err := repo.Create(context.Background(), &c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != 7 {
		t.Fatalf("want id 7, got %d", c.ID)
	}
}

func TestGetByIDAndOwner_ScopedToOwner(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	q := regexp.QuoteMeta("SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE id=? AND username=? LIMIT 1")
	mock.ExpectQuery(q).WithArgs(uint64(1), "other").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDAndOwner(context.Background(), 1, "other")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign owner, got %v", err)
	}
}

func TestSearch_NoFilters(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	countQ := regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE username = ?")
	mock.ExpectQuery(countQ).WithArgs("test").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	dataQ := regexp.QuoteMeta("SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE username = ? ORDER BY id ASC LIMIT ? OFFSET ?")
	mock.ExpectQuery(dataQ).WithArgs("test", 10, 0).
		WillReturnRows(contactRows().
			AddRow(1, "a", nil, nil, nil, "test").
			AddRow(2, "b", nil, nil, nil, "test"))

	out, total, err := repo.Search(context.Background(), SearchQuery{Username: "test", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if total != 2 || len(out) != 2 {
		t.Fatalf("want 2/2, got total=%d len=%d", total, len(out))
	}
}

func TestSearch_NameFilterMatchesEitherName(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	countQ := regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE username = ? AND (first_name LIKE ? OR last_name LIKE ?)")
	mock.ExpectQuery(countQ).WithArgs("test", "%ali%", "%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	dataQ := regexp.QuoteMeta("SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE username = ? AND (first_name LIKE ? OR last_name LIKE ?) ORDER BY id ASC LIMIT ? OFFSET ?")
	mock.ExpectQuery(dataQ).WithArgs("test", "%ali%", "%ali%", 10, 0).
		WillReturnRows(contactRows().AddRow(3, "Alice", nil, nil, nil, "test"))

	out, total, err := repo.Search(context.Background(), SearchQuery{Username: "test", Name: "ali", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if total != 1 || len(out) != 1 || out[0].FirstName != "Alice" {
		t.Fatalf("unexpected result: total=%d out=%+v", total, out)
	}
}

func TestSearch_AllFiltersAndOffset(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	countQ := regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE username = ? AND (first_name LIKE ? OR last_name LIKE ?) AND email LIKE ? AND phone LIKE ?")
	mock.ExpectQuery(countQ).WithArgs("test", "%a%", "%a%", "%@ex%", "%555%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	dataQ := regexp.QuoteMeta("SELECT id,first_name,last_name,email,phone,username FROM contacts WHERE username = ? AND (first_name LIKE ? OR last_name LIKE ?) AND email LIKE ? AND phone LIKE ? ORDER BY id ASC LIMIT ? OFFSET ?")
	mock.ExpectQuery(dataQ).WithArgs("test", "%a%", "%a%", "%@ex%", "%555%", 5, 20).
		WillReturnRows(contactRows().AddRow(42, "last", nil, nil, nil, "test"))

	out, total, err := repo.Search(context.Background(), SearchQuery{
		Username: "test", Name: "a", Email: "@ex", Phone: "555", Page: 5, Size: 5,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if total != 21 || len(out) != 1 {
		t.Fatalf("want total=21 len=1, got total=%d len=%d", total, len(out))
	}
}
