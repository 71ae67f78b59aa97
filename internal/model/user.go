package model

// User represents an application user record as stored in the `users`
// table. The table is keyed by email; the only other column is the bcrypt
// digest of the password. Users are created on registration and read on
// login, never updated or deleted.
//
// Fields:
//  Email – unique email address (primary key).
//  Hash  – bcrypt hashed password.
type User struct {
	Email string // users.email
	Hash  string // users.hash
}
