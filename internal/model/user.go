package model

import "database/sql"

// User represents an application user record as stored in the `users`
// table. The username is the natural primary key; Token holds the single
// active API session token and is NULL whenever the user is logged out.
//
// Fields:
//  Username – unique login name, primary key.
//  Password – bcrypt hashed password.
//  Name     – display name.
//  Token    – current session token (nullable).
type User struct {
	Username string         // users.username
	Password string         // users.password
	Name     string         // users.name
	Token    sql.NullString // users.token (nullable)
}

// UserResponse is the public projection of a user. The password hash never
// leaves the service; the token is only attached on login.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse strips sensitive fields from a user record.
func ToUserResponse(u User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}
