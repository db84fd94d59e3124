// Package repository defines error values that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios: ErrNotFound covers any owner-scoped lookup that matched no
// row, ErrUsernameExists signals a registration conflict.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist under the scope it
// was looked up with. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when an insert hits the users primary key.
// Handlers translate this into the registration conflict response.
var ErrUsernameExists = errors.New("username already exists")
