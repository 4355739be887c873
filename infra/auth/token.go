package auth

import "github.com/Dawaman43/blog-site-frontend/app"

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	// AccessToken returns the current bearer token, or empty when the
	// client is logged out. Requests without a token go out
	// unauthenticated; the server decides what that may read.
	AccessToken() string
}

// StoreTokenProvider reads the bearer token from the local state store.
type StoreTokenProvider struct {
	store app.Store
}

// NewStoreTokenProvider creates a TokenProvider backed by the given store.
func NewStoreTokenProvider(store app.Store) *StoreTokenProvider {
	return &StoreTokenProvider{store: store}
}

// AccessToken returns the saved token, or empty when logged out.
func (p *StoreTokenProvider) AccessToken() string {
	token, ok := p.store.Token()
	if !ok {
		return ""
	}
	return token
}

// Static is a fixed-token provider, useful in tests and smoke runs.
type Static string

// AccessToken returns the fixed token.
func (s Static) AccessToken() string { return string(s) }
