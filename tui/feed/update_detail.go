package feed

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

func (m Model) handleDetailMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BlogDetailLoadedMsg:
		// Ignore stale async responses for a previously opened blog.
		if msg.Slug != m.detailSlug {
			return m, nil
		}
		m.loadingBlog = false
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrTimeout) {
				m.detailErr = errors.New("the blog took too long to load, try again")
			} else {
				m.detailErr = msg.Err
			}
			return m, nil
		}
		m.detailErr = nil
		blog := msg.Blog
		blog.IsOwn = m.userID != "" && blog.AuthorID == m.userID
		blog.Bookmarked = domain.HasLike(m.store.Bookmarks(), blog.ID)
		m.blog = blog
		// The open counts as a view locally; the server increments its own
		// counter on the fetch.
		_ = m.store.MarkViewed(blog.ID)
		return m, nil

	case CommentsLoadedMsg:
		if !m.showDetail || msg.BlogID != m.blog.ID {
			return m, nil
		}
		m.loadingComments = false
		if msg.Err != nil {
			// The blog stays readable; only the thread failed.
			m.notice = "Couldn't load comments: " + msg.Err.Error()
			return m, nil
		}
		m.forest = m.markOwnComments(msg.Forest)
		m.rebuildRows()
		return m, nil

	case ResetFeedStateMsg:
		if msg.ForceReset {
			m.closeDetail()
			m.showCategories = false
			m.searchInput = false
			m.searchBuffer = ""
			m.suggestions = nil
			m.subscribeInput = false
			m.subscribeBuffer = ""
		}
		return m, nil
	}

	return m, nil
}

// openDetail switches to the detail view for the selected blog and kicks
// off both fetches. The comment forest is keyed by blog ID, which the list
// row already carries.
func (m Model) openDetail(blog domain.Blog) (Model, tea.Cmd) {
	m.showDetail = true
	m.detailSlug = blog.Slug
	m.blog = blog
	m.loadingBlog = true
	m.detailErr = nil
	m.forest = nil
	m.rows = nil
	m.loadingComments = true
	m.detailCursor = 0
	m.detailStart = 0
	m.confirmCommentDelete = false
	m.pending = make(map[string]bool)
	return m, tea.Batch(
		m.fetchBlogDetail(blog.Slug),
		m.fetchComments(blog.ID),
	)
}

// closeDetail discards the comment session; the forest lives only as long
// as the detail view.
func (m *Model) closeDetail() {
	m.showDetail = false
	m.detailSlug = ""
	m.blog = domain.Blog{}
	m.loadingBlog = false
	m.detailErr = nil
	m.forest = nil
	m.rows = nil
	m.loadingComments = false
	m.detailCursor = 0
	m.detailStart = 0
	m.confirmCommentDelete = false
	m.pending = make(map[string]bool)
}
