package domain

import "time"

// Comment is a single node in a blog's reply tree. Children hold direct
// replies in arrival order, which is not necessarily chronological.
type Comment struct {
	ID        string
	BlogID    string
	AuthorID  string
	Author    string // Display username
	Body      string
	CreatedAt time.Time
	EditedAt  *time.Time
	Likes     []string // User IDs, set semantics
	ParentID  string   // Empty for top-level comments
	Pinned    bool     // Display-only ordering hint
	IsOwn     bool     // True if the authenticated user wrote this comment
	Children  []Comment
}

// ToggleLike returns the likes list with userID added if absent or removed
// if present. The input slice is not modified.
func ToggleLike(likes []string, userID string) []string {
	out := make([]string, 0, len(likes)+1)
	found := false
	for _, id := range likes {
		if id == userID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, userID)
	}
	return out
}

// HasLike reports whether userID is present in the likes list.
func HasLike(likes []string, userID string) bool {
	for _, id := range likes {
		if id == userID {
			return true
		}
	}
	return false
}
