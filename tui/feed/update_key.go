package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Text inputs and confirm prompts swallow every key while open.
	switch {
	case m.searchInput:
		return m.handleSearchInputKey(msg)
	case m.subscribeInput:
		return m.handleSubscribeInputKey(msg)
	case m.confirmDelete:
		return m.handleConfirmBlogDeleteKey(msg)
	case m.confirmCommentDelete:
		return m.handleConfirmCommentDeleteKey(msg)
	case m.showCategories:
		return m.handleCategoryMenuKey(msg)
	case m.showDetail:
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureFeedCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.ensureFeedCursorVisible()
		}
		// Fetch the next page before the user hits the bottom.
		if m.cursor >= len(m.items)-prefetchTrigger && m.hasMore && !m.loadingMore && !m.loading {
			m.loadingMore = true
			return m, m.fetchOlderBlogs(m.feedReqSeq)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		m.notice = ""
		m.feedReqSeq++
		return m, m.fetchBlogs(m.feedReqSeq)

	case key.Matches(msg, m.keys.Search):
		m.searchInput = true
		m.searchBuffer = m.activeSearch
		m.suggestions = nil
		return m, nil

	case key.Matches(msg, m.keys.Categories):
		m.showCategories = true
		m.categoryCursor = 0
		if len(m.categoryState.categories) == 0 && !m.loadingCategories {
			m.loadingCategories = true
			return m, m.fetchCategories()
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmarks):
		m.bookmarksOnly = !m.bookmarksOnly
		m.loading = true
		m.items = nil
		m.cursor = 0
		m.startIndex = 0
		m.feedReqSeq++
		return m, m.fetchBlogs(m.feedReqSeq)

	case key.Matches(msg, m.keys.Bookmark):
		if m.userID == "" {
			return m, requireLogin("Log in to bookmark blogs")
		}
		blog, ok := m.selectedBlog()
		if !ok {
			return m, nil
		}
		if m.toggleBookmark(blog.ID) {
			m.notice = "Bookmarked."
		} else {
			m.notice = "Bookmark removed."
		}
		return m, nil

	case key.Matches(msg, m.keys.NewEditor), key.Matches(msg, m.keys.NewInline):
		inline := key.Matches(msg, m.keys.NewInline)
		if m.userID == "" {
			return m, requireLogin("Log in to publish blogs")
		}
		if !m.isAdmin {
			m.notice = "Only admins can publish blogs."
			return m, nil
		}
		return m, func() tea.Msg {
			return EditBlogMsg{UseInline: inline}
		}

	case key.Matches(msg, m.keys.Edit):
		blog, ok := m.selectedBlog()
		if !ok || !blog.IsOwn {
			return m, nil
		}
		return m, func() tea.Msg {
			return EditBlogMsg{Blog: blog, UseInline: true}
		}

	case key.Matches(msg, m.keys.Delete):
		blog, ok := m.selectedBlog()
		if !ok || !blog.IsOwn {
			return m, nil
		}
		m.confirmDelete = true
		return m, nil

	case key.Matches(msg, m.keys.Open):
		blog, ok := m.selectedBlog()
		if !ok {
			return m, nil
		}
		return m.openDetail(blog)

	case key.Matches(msg, m.keys.Login):
		return m, requireLogin("")

	case key.Matches(msg, m.keys.Subscribe):
		m.subscribeInput = true
		m.subscribeBuffer = ""
		return m, nil

	case key.Matches(msg, m.keys.ThemeToggle):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Back):
		// Peel back one layer of filtering before clearing the notice.
		if m.activeSearch != "" || m.category != "" || m.bookmarksOnly {
			m.activeSearch = ""
			m.category = ""
			m.bookmarksOnly = false
			m.loading = true
			m.items = nil
			m.cursor = 0
			m.startIndex = 0
			m.feedReqSeq++
			return m, m.fetchBlogs(m.feedReqSeq)
		}
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.detailCursor > 0 {
			m.detailCursor--
			m.ensureDetailCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.detailCursor < len(m.rows) {
			m.detailCursor++
			m.ensureDetailCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loadingBlog = true
		m.loadingComments = true
		m.detailErr = nil
		return m, tea.Batch(
			m.fetchBlogDetail(m.detailSlug),
			m.fetchComments(m.blog.ID),
		)

	case key.Matches(msg, m.keys.Bookmark):
		if m.userID == "" {
			return m, requireLogin("Log in to bookmark blogs")
		}
		if m.toggleBookmark(m.blog.ID) {
			m.notice = "Bookmarked."
		} else {
			m.notice = "Bookmark removed."
		}
		return m, nil

	case key.Matches(msg, m.keys.Reply):
		if m.userID == "" {
			return m, requireLogin("Log in to comment")
		}
		compose := ComposeCommentMsg{BlogID: m.blog.ID}
		if row, ok := m.selectedRow(); ok {
			compose.ParentID = row.Comment.ID
			compose.ReplyToUser = row.Comment.Author
		}
		return m, func() tea.Msg { return compose }

	case key.Matches(msg, m.keys.Like):
		if m.userID == "" {
			return m, requireLogin("Log in to like comments")
		}
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		id := row.Comment.ID
		return m, func() tea.Msg { return LikeCommentMsg{ID: id} }

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selectedRow()
		if ok && row.Comment.IsOwn && !m.pending[row.Comment.ID] {
			compose := ComposeCommentMsg{
				BlogID:    m.blog.ID,
				IsEdit:    true,
				CommentID: row.Comment.ID,
				OldBody:   row.Comment.Body,
			}
			return m, func() tea.Msg { return compose }
		}
		if !ok && m.blog.IsOwn && m.detailCursor == 0 {
			blog := m.blog
			return m, func() tea.Msg { return EditBlogMsg{Blog: blog, UseInline: true} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selectedRow()
		if ok && (row.Comment.IsOwn || m.isAdmin) && !m.pending[row.Comment.ID] {
			m.confirmCommentDelete = true
			return m, nil
		}
		if !ok && m.blog.IsOwn && m.detailCursor == 0 {
			m.confirmDelete = true
		}
		return m, nil

	case key.Matches(msg, m.keys.ThemeToggle):
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) handleCategoryMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Index 0 is the implicit "All" entry.
	switch {
	case key.Matches(msg, m.keys.Back):
		m.showCategories = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.categoryCursor < len(m.categoryState.categories) {
			m.categoryCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.showCategories = false
		slug := ""
		if m.categoryCursor > 0 && m.categoryCursor <= len(m.categoryState.categories) {
			slug = m.categoryState.categories[m.categoryCursor-1].Slug
		}
		if slug == m.category {
			return m, nil
		}
		m.category = slug
		m.loading = true
		m.items = nil
		m.cursor = 0
		m.startIndex = 0
		m.feedReqSeq++
		return m, m.fetchBlogs(m.feedReqSeq)
	}

	return m, nil
}

func (m Model) handleConfirmBlogDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		var id string
		if m.showDetail {
			id = m.blog.ID
		} else if blog, ok := m.selectedBlog(); ok {
			id = blog.ID
		}
		if id == "" {
			return m, nil
		}
		// Drop the item immediately; a failure refetches the feed.
		kept := m.items[:0:0]
		for _, it := range m.items {
			if it.Blog.ID != id {
				kept = append(kept, it)
			}
		}
		m.items = kept
		m.ensureFeedCursorVisible()
		return m, m.deleteBlog(id)

	case "n", "N", "esc":
		m.confirmDelete = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmCommentDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmCommentDelete = false
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		id := row.Comment.ID
		return m, func() tea.Msg { return DeleteOptimisticCommentMsg{ID: id} }

	case "n", "N", "esc":
		m.confirmCommentDelete = false
		return m, nil
	}
	return m, nil
}

func (m Model) toggleTheme() (Model, tea.Cmd) {
	next := common.ThemeDark
	if m.store.Theme() != common.ThemeLight {
		next = common.ThemeLight
	}
	common.SetTheme(next)
	_ = m.store.SetTheme(next)
	return m, nil
}

func requireLogin(reason string) tea.Cmd {
	return func() tea.Msg { return RequireLoginMsg{Reason: reason} }
}
