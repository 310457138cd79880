package domain

// User is an account that can log in. Users are seeded at process start and
// never created or modified at runtime.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // argon2id encoded, never serialized
}
