package domain

type ContextKey string

const UserContextKey ContextKey = "user"

// User is the authenticated principal reconstructed from token claims.
// Token issuance belongs to the external identity provider; this
// backend only validates and reads claims.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
