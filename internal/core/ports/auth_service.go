package ports

import "context"

// AuthService defines the authentication use-cases. Register and Login mint
// a signed, time-limited session token; VerifyToken checks signature and
// expiry only; no store lookup is involved.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) (string, error)
}
