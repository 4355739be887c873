package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// handleBlogMutationMsg applies admin blog mutations optimistically. Created
// blogs appear at the top of the feed immediately with a pending marker and
// are swapped for the server's copy when it answers.
func (m Model) handleBlogMutationMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AddOptimisticBlogMsg:
		draft := domain.Blog{
			ID:        msg.LocalID,
			Title:     msg.Title,
			Content:   msg.Content,
			Author:    m.username,
			AuthorID:  m.userID,
			Category:  m.category,
			CreatedAt: time.Now(),
			IsOwn:     true,
		}
		item := BlogItem{Blog: draft, Status: StatusPendingCreate}
		m.items = append([]BlogItem{item}, m.items...)
		m.cursor = 0
		m.startIndex = 0
		return m, m.createBlog(msg.LocalID, draft)

	case UpdateOptimisticBlogMsg:
		var draft domain.Blog
		for i := range m.items {
			if m.items[i].Blog.ID != msg.ID {
				continue
			}
			m.items[i].OldTitle = m.items[i].Blog.Title
			m.items[i].OldContent = m.items[i].Blog.Content
			m.items[i].Blog.Title = msg.Title
			m.items[i].Blog.Content = msg.Content
			m.items[i].Status = StatusPendingUpdate
			m.items[i].Err = nil
			draft = m.items[i].Blog
		}
		if m.showDetail && m.blog.ID == msg.ID {
			m.blog.Title = msg.Title
			m.blog.Content = msg.Content
			draft = m.blog
		}
		if draft.ID == "" {
			return m, nil
		}
		return m, m.updateBlog(draft)

	case BlogResultMsg:
		for i := range m.items {
			if m.items[i].Blog.ID != msg.ID {
				continue
			}
			if msg.Err != nil {
				if msg.IsEdit {
					// Put the previous text back; the server rejected the edit.
					m.items[i].Blog.Title = m.items[i].OldTitle
					m.items[i].Blog.Content = m.items[i].OldContent
					m.items[i].Status = StatusNormal
				} else {
					m.items[i].Status = StatusFailed
				}
				m.items[i].Err = msg.Err
				m.notice = "Couldn't save blog: " + msg.Err.Error()
			} else {
				blog := msg.Blog
				blog.IsOwn = true
				blog.Bookmarked = m.items[i].Blog.Bookmarked
				m.items[i] = BlogItem{Blog: blog, Status: StatusNormal}
			}
			break
		}
		if msg.Err == nil && m.showDetail && m.blog.ID == msg.ID {
			blog := msg.Blog
			blog.IsOwn = true
			blog.Bookmarked = m.blog.Bookmarked
			m.blog = blog
			m.detailSlug = blog.Slug
		}
		return m, nil

	case BlogDeletedMsg:
		if msg.Err != nil {
			// The item was removed optimistically; bring the feed back in
			// sync with the server.
			m.notice = "Couldn't delete blog: " + msg.Err.Error()
			m.loading = true
			m.feedReqSeq++
			return m, m.fetchBlogs(m.feedReqSeq)
		}
		if m.showDetail && m.blog.ID == msg.ID {
			m.closeDetail()
		}
		return m, nil
	}

	return m, nil
}
