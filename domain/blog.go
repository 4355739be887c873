package domain

import "time"

// Blog represents a single published post from the platform.
type Blog struct {
	ID         string
	Slug       string
	Title      string
	Content    string // Plain text, HTML stripped
	Author     string
	AuthorID   string
	Category   string
	Tags       []string
	CoverURL   string
	Likes      []string // User IDs
	ViewCount  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsOwn      bool // True if this blog belongs to the authenticated user
	Bookmarked bool // Local flag, derived from the bookmark store
}

// Category is a blog category usable as a feed filter.
type Category struct {
	ID    string
	Slug  string
	Name  string
	Count int // Number of blogs in the category, if the server reports it
}
