package feed

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
)

func (m Model) fetchBlogs(reqSeq int) tea.Cmd {
	blogs := m.blogs
	q := app.ListQuery{
		Search:   m.activeSearch,
		Category: m.category,
		Page:     1,
		Limit:    defaultLimit,
	}
	queryKey := m.currentFeedQueryKey()
	return func() tea.Msg {
		list, err := blogs.List(context.Background(), q)
		if err != nil {
			return BlogsErrorMsg{Err: err, QueryKey: queryKey, ReqSeq: reqSeq}
		}
		return BlogsLoadedMsg{Blogs: list, QueryKey: queryKey, ReqSeq: reqSeq}
	}
}

func (m Model) fetchOlderBlogs(reqSeq int) tea.Cmd {
	if m.loading || m.loadingMore || !m.hasMore {
		return nil
	}
	blogs := m.blogs
	q := app.ListQuery{
		Search:   m.activeSearch,
		Category: m.category,
		Page:     m.page + 1,
		Limit:    defaultLimit,
	}
	queryKey := m.currentFeedQueryKey()
	return func() tea.Msg {
		list, err := blogs.List(context.Background(), q)
		if err != nil {
			return BlogsPageErrorMsg{Err: err, QueryKey: queryKey, ReqSeq: reqSeq}
		}
		return BlogsPageLoadedMsg{Blogs: list, QueryKey: queryKey, ReqSeq: reqSeq}
	}
}

func (m Model) fetchCategories() tea.Cmd {
	categories := m.modelServices.categories
	return func() tea.Msg {
		list, err := categories.List(context.Background())
		return CategoriesLoadedMsg{Categories: list, Err: err}
	}
}

func (m Model) fetchSuggestions(term string) tea.Cmd {
	blogs := m.blogs
	return func() tea.Msg {
		titles, err := blogs.Suggest(context.Background(), term, suggestLimit)
		return SuggestionsLoadedMsg{Term: term, Titles: titles, Err: err}
	}
}

// fetchBlogDetail loads the full blog. The service applies the ten-second
// deadline; a timeout surfaces as domain.ErrTimeout.
func (m Model) fetchBlogDetail(slug string) tea.Cmd {
	blogs := m.blogs
	return func() tea.Msg {
		blog, err := blogs.GetBySlug(context.Background(), slug)
		return BlogDetailLoadedMsg{Slug: slug, Blog: blog, Err: err}
	}
}

func (m Model) fetchComments(blogID string) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		forest, err := comments.List(context.Background(), blogID)
		return CommentsLoadedMsg{BlogID: blogID, Forest: forest, Err: err}
	}
}

func (m Model) postComment(localID, blogID, parentID, body string) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		posted, err := comments.Create(context.Background(), blogID, parentID, body)
		return CommentPostedMsg{LocalID: localID, ParentID: parentID, Comment: posted, Err: err}
	}
}

func (m Model) editComment(id, body, oldBody string) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		edited, err := comments.Edit(context.Background(), id, body)
		return CommentEditedMsg{ID: id, OldBody: oldBody, Comment: edited, Err: err}
	}
}

func (m Model) likeComment(id string) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		likes, err := comments.Like(context.Background(), id)
		return CommentLikedMsg{ID: id, Likes: likes, Err: err}
	}
}

func (m Model) deleteComment(id string) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		err := comments.Delete(context.Background(), id)
		return CommentDeletedMsg{ID: id, Err: err}
	}
}

func (m Model) createBlog(localID string, draft domain.Blog) tea.Cmd {
	blogs := m.blogs
	return func() tea.Msg {
		created, err := blogs.Create(context.Background(), draft)
		return BlogResultMsg{ID: localID, Blog: created, Err: err}
	}
}

func (m Model) updateBlog(draft domain.Blog) tea.Cmd {
	blogs := m.blogs
	return func() tea.Msg {
		updated, err := blogs.Update(context.Background(), draft)
		return BlogResultMsg{ID: draft.ID, Blog: updated, IsEdit: true, Err: err}
	}
}

func (m Model) deleteBlog(id string) tea.Cmd {
	blogs := m.blogs
	return func() tea.Msg {
		err := blogs.Delete(context.Background(), id)
		return BlogDeletedMsg{ID: id, Err: err}
	}
}

func (m Model) subscribe(email string) tea.Cmd {
	account := m.account
	return func() tea.Msg {
		err := account.Subscribe(context.Background(), email)
		return SubscribeResultMsg{Err: err}
	}
}

// scheduleSearchTick arms the suggestion debounce timer for the current
// keystroke generation.
func (m Model) scheduleSearchTick(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return SearchTickMsg{Seq: seq}
	})
}
