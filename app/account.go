package app

import (
	"context"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// Session is the result of a successful login or registration.
type Session struct {
	User  domain.User
	Token string
}

// AccountService authenticates and describes the current user.
type AccountService interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (Session, error)

	// Register creates an account and logs it in.
	Register(ctx context.Context, username, email, password string) (Session, error)

	// CurrentUser returns the authenticated user's profile.
	CurrentUser(ctx context.Context) (domain.User, error)

	// UpdateProfile updates username and bio.
	UpdateProfile(ctx context.Context, username, bio string) error

	// Subscribe signs an email address up for the newsletter.
	Subscribe(ctx context.Context, email string) error
}
