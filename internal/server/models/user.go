package models

// User is one row of the users table. Password holds the plaintext only
// between the form and the hasher; once persisted it is the digest.
type User struct {
	Username string
	Password string
	Email    string
}
