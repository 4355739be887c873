package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BlogsLoadedMsg:
		if msg.ReqSeq != m.feedReqSeq {
			return m, nil
		}
		if msg.QueryKey != m.currentFeedQueryKey() {
			return m, nil
		}

		blogs := m.markOwnBlogs(msg.Blogs)
		if m.bookmarksOnly {
			blogs = keepBookmarked(blogs)
		}
		newItems := make([]BlogItem, len(blogs))
		for i, b := range blogs {
			newItems[i] = BlogItem{Blog: b, Status: StatusNormal}
		}

		// Keep optimistic items the server doesn't know about yet.
		var pendingItems []BlogItem
		for _, it := range m.items {
			if it.Status != StatusPendingCreate && it.Status != StatusPendingUpdate {
				continue
			}
			found := false
			for j, ni := range newItems {
				if ni.Blog.ID == it.Blog.ID {
					found = true
					if it.Status == StatusPendingUpdate {
						// Server wins once it arrives.
						newItems[j] = BlogItem{Blog: ni.Blog, Status: StatusNormal}
					}
					break
				}
			}
			if !found {
				pendingItems = append(pendingItems, it)
			}
		}

		m.items = append(pendingItems, newItems...)
		m.loading = false
		m.loadingMore = false
		m.err = nil
		m.notice = ""
		m.page = 1
		m.hasMore = len(msg.Blogs) == defaultLimit
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		m.ensureFeedCursorVisible()
		return m, nil

	case BlogsErrorMsg:
		if msg.ReqSeq != m.feedReqSeq || msg.QueryKey != m.currentFeedQueryKey() {
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		m.err = msg.Err
		return m, nil

	case BlogsPageLoadedMsg:
		if msg.ReqSeq != m.feedReqSeq || msg.QueryKey != m.currentFeedQueryKey() {
			return m, nil
		}
		m.loadingMore = false
		m.err = nil

		blogs := m.markOwnBlogs(msg.Blogs)
		if m.bookmarksOnly {
			blogs = keepBookmarked(blogs)
		}

		existing := make(map[string]struct{}, len(m.items))
		for _, it := range m.items {
			existing[it.Blog.ID] = struct{}{}
		}
		added := 0
		for _, b := range blogs {
			if _, ok := existing[b.ID]; ok {
				continue
			}
			m.items = append(m.items, BlogItem{Blog: b, Status: StatusNormal})
			added++
		}

		m.page++
		m.hasMore = len(msg.Blogs) == defaultLimit && added > 0
		if !m.hasMore && len(m.items) > 0 {
			m.notice = "You're all caught up."
		}
		return m, nil

	case BlogsPageErrorMsg:
		if msg.ReqSeq != m.feedReqSeq || msg.QueryKey != m.currentFeedQueryKey() {
			return m, nil
		}
		m.loadingMore = false
		m.err = msg.Err
		return m, nil

	case CategoriesLoadedMsg:
		m.loadingCategories = false
		if msg.Err != nil {
			// Category browsing degrades to "all"; the feed itself is fine.
			return m, nil
		}
		m.categoryState.categories = msg.Categories
		if m.categoryCursor > len(m.categoryState.categories) {
			m.categoryCursor = 0
		}
		return m, nil
	}

	return m, nil
}

func keepBookmarked(in []domain.Blog) []domain.Blog {
	out := make([]domain.Blog, 0, len(in))
	for _, b := range in {
		if b.Bookmarked {
			out = append(out, b)
		}
	}
	return out
}
