package auth

// Verifier resolves an opaque bearer token into the identity of the
// user it was minted for. Resolution is the only access-control
// boundary in the system; each authenticated resource handler calls it
// independently.
type Verifier interface {
	VerifyBearer(token string) (*Claims, error)
}

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID uint
	Email  string
}

// GetID implements logger.LogUser.
func (c *Claims) GetID() uint { return c.UserID }

// GetEmail implements logger.LogUser.
func (c *Claims) GetEmail() string { return c.Email }
