package app

// Store persists small client-side state between sessions: the session
// token, bookmarked blog IDs, the theme preference, and the set of already
// viewed blogs. Typed accessors instead of ambient global access keep the
// state mockable in tests. Writes are last-write-wins; there is no locking
// across processes.
type Store interface {
	// Token returns the saved session token; ok is false when logged out.
	Token() (token string, ok bool)
	SetToken(token string) error
	ClearToken() error

	// Bookmarks returns the bookmarked blog IDs in insertion order.
	Bookmarks() []string
	SetBookmarks(ids []string) error

	// Theme returns the saved theme name, empty when unset.
	Theme() string
	SetTheme(name string) error

	// IsViewed reports whether a blog was opened before.
	IsViewed(blogID string) bool
	MarkViewed(blogID string) error
}
