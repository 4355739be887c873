package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
)

// accountService implements app.AccountService against the platform API.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the platform API.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

type apiUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

type sessionPayload struct {
	User  apiUser `json:"user"`
	Token string  `json:"token"`
}

func (s *accountService) Login(ctx context.Context, email, password string) (app.Session, error) {
	data, err := s.client.Post(ctx, "/api/auth/login", map[string]any{
		"email":    strings.TrimSpace(email),
		"password": password,
	})
	if err != nil {
		return app.Session{}, fmt.Errorf("logging in: %w", err)
	}
	return parseSession(data)
}

func (s *accountService) Register(ctx context.Context, username, email, password string) (app.Session, error) {
	data, err := s.client.Post(ctx, "/api/auth/register", map[string]any{
		"username": strings.TrimSpace(username),
		"email":    strings.TrimSpace(email),
		"password": password,
	})
	if err != nil {
		return app.Session{}, fmt.Errorf("registering: %w", err)
	}
	return parseSession(data)
}

func (s *accountService) CurrentUser(ctx context.Context) (domain.User, error) {
	data, err := s.client.Get(ctx, "/api/users/me")
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching current user: %w", err)
	}

	var payload struct {
		User apiUser `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.User{}, fmt.Errorf("parsing user: %w", err)
	}
	return mapUser(payload.User), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, username, bio string) error {
	_, err := s.client.Put(ctx, "/api/users/me", map[string]any{
		"username": strings.TrimSpace(username),
		"bio":      strings.TrimSpace(bio),
	})
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (s *accountService) Subscribe(ctx context.Context, email string) error {
	_, err := s.client.Post(ctx, "/api/subscribe", map[string]any{
		"email": strings.TrimSpace(email),
	})
	if err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}
	return nil
}

func parseSession(data []byte) (app.Session, error) {
	var payload sessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return app.Session{}, fmt.Errorf("parsing session response: %w", err)
	}
	if payload.Token == "" {
		return app.Session{}, fmt.Errorf("session response missing token")
	}
	return app.Session{
		User:  mapUser(payload.User),
		Token: payload.Token,
	}, nil
}

func mapUser(u apiUser) domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.Avatar,
		IsAdmin:   u.Role == "admin",
	}
}
