package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

// View renders the feed as a string.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	switch {
	case m.searchInput:
		b.WriteString(m.renderSearchBox())
	case m.subscribeInput:
		b.WriteString(m.renderSubscribeBox())
	case m.showCategories:
		b.WriteString(m.renderCategoryMenu())
		b.WriteString("\n" + m.helpView())
		return b.String()
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading blogs...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.items) == 0:
		b.WriteString("  " + m.emptyFeedText() + "\n")
	default:
		b.WriteString(m.renderBlogList())
	}

	b.WriteString("\n")
	if m.loading && len(m.items) > 0 {
		b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
	}
	if m.loadingMore {
		b.WriteString(fmt.Sprintf("  %s Loading more...\n", m.spinner.View()))
	}
	if m.notice != "" {
		b.WriteString(common.SuccessStyle.Render("  "+m.notice) + "\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) renderHeader() string {
	title := common.AppTitleStyle.Render("✍ BlogSite")
	tagline := common.TaglineStyle.Render("<stories from the terminal>")

	var badges []string
	if m.category != "" {
		badges = append(badges, common.CategoryStyle.Render("#"+m.category))
	}
	if m.activeSearch != "" {
		badges = append(badges, common.CategoryStyle.Render("🔎 "+m.activeSearch))
	}
	if m.bookmarksOnly {
		badges = append(badges, common.BookmarkBadgeStyle.Render("★ bookmarks"))
	}
	badge := "  " + strings.Join(badges, "  ")
	if len(badges) == 0 {
		badge = "  " + common.TimestampStyle.Render("all blogs")
	}

	session := ""
	if m.username != "" {
		label := "@" + m.username
		if m.isAdmin {
			label += " (admin)"
		}
		session = common.AuthorStyle.Render("  " + label)
	}

	return title + tagline + session + "\n" + badge + "\n\n"
}

func (m Model) emptyFeedText() string {
	switch {
	case m.bookmarksOnly:
		return "No bookmarks yet. Press b on a blog to save it."
	case m.activeSearch != "":
		return fmt.Sprintf("Nothing matches %q.", m.activeSearch)
	case m.category != "":
		return "No blogs in this category yet."
	default:
		return "No blogs published yet."
	}
}

func (m Model) renderSearchBox() string {
	var b strings.Builder
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(0, 1).
		MarginLeft(2)
	b.WriteString(box.Render("🔎 "+m.searchBuffer+"█") + "\n")

	for _, title := range m.suggestions {
		b.WriteString("    " + common.TimestampStyle.Render(common.Truncate(title, 60)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSubscribeBox() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(0, 1).
		MarginLeft(2)
	return box.Render("✉ Subscribe: "+m.subscribeBuffer+"█") + "\n\n"
}

func (m Model) renderCategoryMenu() string {
	var b strings.Builder
	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Underline(true).Render("Categories") + "\n\n")

	if m.loadingCategories {
		b.WriteString(fmt.Sprintf("  %s Loading categories...\n", m.spinner.View()))
		return b.String()
	}

	render := func(i int, label string) {
		line := "    " + label
		if i == m.categoryCursor {
			line = "  " + common.CategoryStyle.Render("❯ "+label)
		}
		b.WriteString(line + "\n")
	}
	render(0, "All blogs")
	for i, c := range m.categoryState.categories {
		label := c.Name
		if c.Count > 0 {
			label += common.TimestampStyle.Render(fmt.Sprintf(" (%d)", c.Count))
		}
		render(i+1, label)
	}
	return b.String()
}

func (m Model) renderBlogList() string {
	slots := m.feedSlots()
	start := m.startIndex
	if start < 0 {
		start = 0
	}
	if start >= len(m.items) {
		start = len(m.items) - 1
	}
	end := min(start+slots, len(m.items))

	var list strings.Builder
	for i := start; i < end; i++ {
		list.WriteString(m.renderBlogCard(i))
		list.WriteString("\n")
	}
	return strings.TrimSuffix(list.String(), "\n")
}

func (m Model) renderBlogCard(i int) string {
	item := m.items[i]
	blog := item.Blog

	title := lipgloss.NewStyle().Bold(true).Render(common.Truncate(blog.Title, 66))
	author := common.AuthorStyle.Render("@" + blog.Author)
	if blog.IsOwn {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	timestamp := common.TimestampStyle.Render(common.RelativeTime(blog.CreatedAt, time.Now()))

	var badges []string
	if blog.Bookmarked {
		badges = append(badges, common.BookmarkBadgeStyle.Render("★"))
	}
	if m.store.IsViewed(blog.ID) {
		badges = append(badges, common.TimestampStyle.Render("seen"))
	}
	if blog.Category != "" {
		badges = append(badges, common.CategoryStyle.Render("#"+blog.Category))
	}

	statusText := ""
	switch item.Status {
	case StatusPendingCreate:
		statusText = common.ConfirmStyle.Render(" (publishing...)")
	case StatusPendingUpdate:
		statusText = common.ConfirmStyle.Render(" (saving...)")
	case StatusPendingDelete:
		statusText = common.ConfirmStyle.Render(" (deleting...)")
	case StatusFailed:
		statusText = common.ErrorStyle.Render(" (failed)")
	}

	preview := common.ContentStyle.Render(common.Truncate(strings.ReplaceAll(blog.Content, "\n", " "), 66))
	meta := common.TimestampStyle.Render(fmt.Sprintf("♡ %d  👁 %d", len(blog.Likes), blog.ViewCount))
	if len(badges) > 0 {
		meta += "  " + strings.Join(badges, " ")
	}

	card := fmt.Sprintf("%s%s\n%s  %s\n%s\n%s", title, statusText, author, timestamp, preview, meta)

	if i == m.cursor {
		rendered := common.SelectedStyle.Render(card)
		if m.confirmDelete {
			rendered += "\n" + common.ConfirmStyle.Render("  Delete this blog? (y/n)")
		}
		return rendered
	}
	return common.UnselectedStyle.Render(card)
}

func (m Model) helpView() string {
	var items []string

	switch {
	case m.searchInput:
		items = []string{"enter: search", "esc: cancel"}
	case m.subscribeInput:
		items = []string{"enter: subscribe", "esc: cancel"}
	case m.showCategories:
		items = []string{"j/k: move", "enter: filter", "esc: close"}
	case m.showDetail:
		items = []string{"j/k: move", "c: reply", "l: like", "b: bookmark", "r: refresh", "esc: back"}
		if row, ok := m.selectedRow(); ok && row.Comment.IsOwn {
			items = append(items, "e: edit", "d: delete")
		}
	default:
		items = []string{"j/k: move", "enter: open", "/: search", "C: categories", "B: bookmarks", "b: save"}
		if m.userID == "" {
			items = append(items, "L: log in")
		} else if m.isAdmin {
			items = append(items, "n/N: new blog")
		}
		if blog, ok := m.selectedBlog(); ok && blog.IsOwn {
			items = append(items, "e: edit", "d: delete")
		}
		items = append(items, "S: subscribe", "T: theme", "q: quit")
	}

	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}
