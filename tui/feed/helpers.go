package feed

import (
	"strings"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// currentFeedQueryKey identifies the active filter combination, so responses
// for an abandoned filter can be dropped.
func (m Model) currentFeedQueryKey() string {
	key := m.category + "|" + m.activeSearch
	if m.bookmarksOnly {
		key += "|bookmarks"
	}
	return key
}

// flattenComments turns the forest into display rows: pinned roots first
// (stable, display-only; the tree itself keeps arrival order), each node
// followed by its subtree, depth tracking indentation.
func flattenComments(forest []domain.Comment) []CommentRow {
	ordered := make([]domain.Comment, 0, len(forest))
	for _, c := range forest {
		if c.Pinned {
			ordered = append(ordered, c)
		}
	}
	for _, c := range forest {
		if !c.Pinned {
			ordered = append(ordered, c)
		}
	}

	var rows []CommentRow
	var walk func(nodes []domain.Comment, depth int)
	walk = func(nodes []domain.Comment, depth int) {
		for _, n := range nodes {
			rows = append(rows, CommentRow{Comment: n, Depth: depth})
			walk(n.Children, depth+1)
		}
	}
	walk(ordered, 0)
	return rows
}

// rebuildRows refreshes the flattened view after any forest change and
// clamps the detail cursor.
func (m *Model) rebuildRows() {
	m.rows = flattenComments(m.forest)
	if m.detailCursor > len(m.rows) {
		m.detailCursor = len(m.rows)
	}
	m.ensureDetailCursorVisible()
}

// selectedRow returns the comment row under the detail cursor, if any.
func (m Model) selectedRow() (CommentRow, bool) {
	idx := m.detailCursor - 1
	if idx < 0 || idx >= len(m.rows) {
		return CommentRow{}, false
	}
	return m.rows[idx], true
}

// markOwnBlogs stamps ownership and bookmark flags onto fetched blogs.
func (m Model) markOwnBlogs(blogs []domain.Blog) []domain.Blog {
	bookmarked := make(map[string]bool)
	for _, id := range m.store.Bookmarks() {
		bookmarked[id] = true
	}
	out := make([]domain.Blog, len(blogs))
	for i, b := range blogs {
		b.IsOwn = m.userID != "" && b.AuthorID == m.userID
		b.Bookmarked = bookmarked[b.ID]
		out[i] = b
	}
	return out
}

// markOwnComments stamps ownership through the whole forest. It runs again
// on session changes, so it must also clear flags when logged out.
func (m Model) markOwnComments(forest []domain.Comment) []domain.Comment {
	if forest == nil {
		return nil
	}
	out := make([]domain.Comment, len(forest))
	for i, c := range forest {
		c.IsOwn = m.userID != "" && c.AuthorID == m.userID
		c.Children = m.markOwnComments(c.Children)
		out[i] = c
	}
	return out
}

// toggleBookmark flips the selected blog's bookmark, persisting the new
// list. Returns the new state of the flag.
func (m *Model) toggleBookmark(blogID string) bool {
	ids := m.store.Bookmarks()
	kept := make([]string, 0, len(ids))
	removed := false
	for _, id := range ids {
		if id == blogID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, blogID)
	}
	// Persisting can only fail on disk trouble; the in-memory flag still
	// flips so the UI stays responsive.
	_ = m.store.SetBookmarks(kept)

	for i := range m.items {
		if m.items[i].Blog.ID == blogID {
			m.items[i].Blog.Bookmarked = !removed
		}
	}
	if m.blog.ID == blogID {
		m.blog.Bookmarked = !removed
	}
	return !removed
}

func (m Model) selectedBlog() (domain.Blog, bool) {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Blog{}, false
	}
	return m.items[m.cursor].Blog, true
}

func (m *Model) setCursorByID(id string) {
	if strings.TrimSpace(id) == "" {
		return
	}
	for i := range m.items {
		if m.items[i].Blog.ID == id {
			m.cursor = i
			m.ensureFeedCursorVisible()
			return
		}
	}
}

// feedSlots returns how many blog cards fit on screen.
func (m Model) feedSlots() int {
	// Header (~5), status bar (~2), padding (~2); each card is 5 lines.
	available := max(m.height-9, 0)
	return max(available/5, 1)
}

func (m *Model) ensureFeedCursorVisible() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) && len(m.items) > 0 {
		m.cursor = len(m.items) - 1
	}
	slots := m.feedSlots()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+slots {
		m.startIndex = m.cursor - slots + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}

// detailSlots returns how many comment rows fit under the blog card.
func (m Model) detailSlots() int {
	h := max(m.height-20, 12)
	return max(h/4, 3)
}

func (m *Model) ensureDetailCursorVisible() {
	if !m.showDetail {
		m.detailStart = 0
		return
	}
	if m.detailCursor <= 0 {
		m.detailStart = 0
		return
	}
	slots := m.detailSlots()
	idx := m.detailCursor - 1
	if idx < m.detailStart {
		m.detailStart = idx
	}
	if idx >= m.detailStart+slots {
		m.detailStart = idx - slots + 1
	}
	maxStart := max(len(m.rows)-slots, 0)
	if m.detailStart > maxStart {
		m.detailStart = maxStart
	}
	if m.detailStart < 0 {
		m.detailStart = 0
	}
}
