package domain

import "time"

// Tree operations over a comment forest: the ordered top-level comments of a
// blog, each possibly carrying nested reply subtrees.
//
// All operations return a new forest; the input is never modified. Only the
// ancestor chain of the touched node is rebuilt, untouched siblings are
// shared with the input. Callers can therefore rely on reference changes to
// detect what a mutation affected.
//
// A missing target id is a silent no-op, not an error: the local forest may
// be briefly stale relative to the server, and the next full refetch
// reconciles it. If duplicate ids exist (corrupt data), only the first node
// in depth-first, left-to-right order is affected.

// CommentPatch lists the fields a patch may change. Nil fields are left
// untouched.
type CommentPatch struct {
	Body     *string
	EditedAt *time.Time
	Likes    *[]string
	Pinned   *bool
}

// InsertReply appends node to the children of the comment whose ID equals
// parentID. An empty parentID appends node at the top level of the forest.
func InsertReply(forest []Comment, parentID string, node Comment) []Comment {
	if parentID == "" {
		out := append([]Comment{}, forest...)
		return append(out, node)
	}
	out, _ := rewriteComment(forest, parentID, func(c Comment) Comment {
		c.Children = append(append([]Comment{}, c.Children...), node)
		return c
	})
	return out
}

// PatchComment merges patch into the comment whose ID equals id.
func PatchComment(forest []Comment, id string, patch CommentPatch) []Comment {
	out, _ := rewriteComment(forest, id, func(c Comment) Comment {
		if patch.Body != nil {
			c.Body = *patch.Body
		}
		if patch.EditedAt != nil {
			c.EditedAt = patch.EditedAt
		}
		if patch.Likes != nil {
			c.Likes = *patch.Likes
		}
		if patch.Pinned != nil {
			c.Pinned = *patch.Pinned
		}
		return c
	})
	return out
}

// SetCommentLikes replaces the likes list of the comment whose ID equals id.
// Like toggling fires on every click, so the caller only supplies the one
// field that changed.
func SetCommentLikes(forest []Comment, id string, likes []string) []Comment {
	return PatchComment(forest, id, CommentPatch{Likes: &likes})
}

// RemoveComment removes the comment whose ID equals id together with its
// whole subtree. Children are not reattached to the grandparent, matching
// how server-side deletion cascades.
func RemoveComment(forest []Comment, id string) []Comment {
	out, _ := removeComment(forest, id)
	return out
}

// CommentAuthor returns the display username of the comment whose ID equals
// id, used for "replying to @X" labels. ok is false when the id is not in
// the forest (it may belong to a node pruned by an earlier deletion).
func CommentAuthor(forest []Comment, id string) (string, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return forest[i].Author, true
		}
		if name, ok := CommentAuthor(forest[i].Children, id); ok {
			return name, true
		}
	}
	return "", false
}

// rewriteComment replaces the first comment matching id (depth-first, left
// to right) with apply(comment), rebuilding the path down to it. ok reports
// whether a match was found; on a miss the input forest is returned as-is.
func rewriteComment(forest []Comment, id string, apply func(Comment) Comment) ([]Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return replaceAt(forest, i, apply(forest[i])), true
		}
		if children, ok := rewriteComment(forest[i].Children, id, apply); ok {
			c := forest[i]
			c.Children = children
			return replaceAt(forest, i, c), true
		}
	}
	return forest, false
}

func removeComment(forest []Comment, id string) ([]Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			if len(forest) == 1 {
				// Keep a nil children slice nil, so that inserting a reply
				// and removing it round-trips to the original forest.
				return nil, true
			}
			out := append([]Comment{}, forest[:i]...)
			return append(out, forest[i+1:]...), true
		}
		if children, ok := removeComment(forest[i].Children, id); ok {
			c := forest[i]
			c.Children = children
			return replaceAt(forest, i, c), true
		}
	}
	return forest, false
}

func replaceAt(forest []Comment, i int, c Comment) []Comment {
	out := append([]Comment{}, forest...)
	out[i] = c
	return out
}
