package model

// User represents a row in the `users` table. Every member starts out as an
// unapproved candidate; role and approval are only changed through the
// role-update endpoint by an admin or chairman.
//
// PasswordHash holds the bcrypt digest of the registration password. The
// plaintext is hashed before it ever reaches the repository and is never
// stored or logged. List projections exclude the hash entirely.
type User struct {
	ID           uint64 `json:"id"`
	FullName     string `json:"full_name"`
	BirthDate    string `json:"birth_date,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Approved     bool   `json:"approved"`
}
