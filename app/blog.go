package app

import (
	"context"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// ListQuery narrows a blog listing. Zero values mean "no filter".
type ListQuery struct {
	Search   string
	Category string // Category slug
	Page     int    // 1-based; 0 means first page
	Limit    int
}

// BlogService reads and writes blogs on the platform API.
type BlogService interface {
	// List returns blogs matching the query, newest first.
	List(ctx context.Context, q ListQuery) ([]domain.Blog, error)

	// GetBySlug returns a single blog with full content.
	GetBySlug(ctx context.Context, slug string) (domain.Blog, error)

	// Suggest returns blog titles matching a partial search term.
	Suggest(ctx context.Context, term string, limit int) ([]string, error)

	// Create publishes a new blog.
	Create(ctx context.Context, draft domain.Blog) (domain.Blog, error)

	// Update replaces the title, content, category, and tags of an
	// existing blog.
	Update(ctx context.Context, draft domain.Blog) (domain.Blog, error)

	// Delete removes a blog by ID.
	Delete(ctx context.Context, id string) error
}

// CategoryService lists the platform's blog categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}
