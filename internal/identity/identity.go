package identity

import "context"

// Principal is the resolved identity of a caller: the owner identifier used
// for the booking ownership check plus the contact details notifications go to.
type Principal struct {
	Username string
	Email    string
	Name     string
}

// Provider resolves an opaque caller token to a Principal.
type Provider interface {
	Resolve(ctx context.Context, token string) (*Principal, error)
}
