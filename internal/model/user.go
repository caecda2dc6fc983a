package model

// User represents a registered account.
//
// Password holds the plaintext on input and the bcrypt hash once persisted.
// The field stays serializable because the registration response returns the
// stored record as-is, hash included.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
