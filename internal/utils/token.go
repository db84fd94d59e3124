package utils

import "github.com/google/uuid"

// NewSessionToken issues an opaque API session token. A fresh uuid replaces
// whatever token the user held before, so at most one session is active.
func NewSessionToken() string {
	return uuid.NewString()
}
