package app

import (
	"context"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// CommentService reads and mutates a blog's comment thread. List returns the
// nested forest as the server assembled it; incremental mutations are
// reflected locally through the domain tree operations without a refetch.
type CommentService interface {
	// List returns the comment forest for a blog.
	List(ctx context.Context, blogID string) ([]domain.Comment, error)

	// Create posts a comment. An empty parentID makes it top-level.
	Create(ctx context.Context, blogID, parentID, body string) (domain.Comment, error)

	// Edit replaces a comment's body.
	Edit(ctx context.Context, id, body string) (domain.Comment, error)

	// Delete removes a comment and, server-side, its whole subtree.
	Delete(ctx context.Context, id string) error

	// Like toggles the authenticated user's like and returns the
	// resulting likes list.
	Like(ctx context.Context, id string) ([]string, error)
}
