package auth

// Credentials is the login view of an employee row.
type Credentials struct {
	ID           int64
	Email        string
	PasswordHash string
	UserType     string
}
