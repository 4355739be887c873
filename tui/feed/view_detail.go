package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dawaman43/blog-site-frontend/domain"
	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

func (m Model) renderDetailView() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("✍ BlogSite")
	crumbStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	crumb := crumbStyle.Render("  feed > " + common.Truncate(m.detailSlug, 50))
	b.WriteString(title + "\n" + crumb + "\n\n")

	if m.loadingBlog {
		b.WriteString(fmt.Sprintf("  %s Loading blog...\n", m.spinner.View()))
		b.WriteString("\n" + m.helpView())
		return b.String()
	}
	if m.detailErr != nil {
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  %v", m.detailErr)))
		b.WriteString("\n\n  Press r to retry, esc to go back.\n")
		b.WriteString("\n" + m.helpView())
		return b.String()
	}

	b.WriteString(m.renderBlogDetailCard())
	b.WriteString(m.renderCommentThread())

	if m.notice != "" {
		b.WriteString("\n" + common.SuccessStyle.Render("  "+m.notice))
	}
	b.WriteString("\n\n" + m.helpView())
	return b.String()
}

func (m Model) renderBlogDetailCard() string {
	blog := m.blog

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Bold(true).Render(blog.Title) + "\n")
	card.WriteString(common.AuthorStyle.Render("@" + blog.Author))
	if blog.IsOwn {
		card.WriteString(common.OwnBadgeStyle.Render("(you)"))
	}
	card.WriteString("  " + common.TimestampStyle.Render(blog.CreatedAt.Format("Monday, Jan 02, 2006 at 15:04")) + "\n")

	var badges []string
	if blog.Category != "" {
		badges = append(badges, common.CategoryStyle.Render("#"+blog.Category))
	}
	for _, t := range blog.Tags {
		badges = append(badges, common.TimestampStyle.Render("#"+t))
	}
	if blog.Bookmarked {
		badges = append(badges, common.BookmarkBadgeStyle.Render("★ saved"))
	}
	if len(badges) > 0 {
		card.WriteString(strings.Join(badges, " ") + "\n")
	}
	card.WriteString("\n")

	card.WriteString(common.ContentStyle.Width(66).Render(blog.Content) + "\n\n")
	card.WriteString(common.TimestampStyle.Render(fmt.Sprintf("♡ %d  👁 %d", len(blog.Likes), blog.ViewCount)))

	border := lipgloss.Color("#FF8700")
	if m.detailCursor == 0 {
		border = lipgloss.Color("#FFFFFF")
	}
	rendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		MarginLeft(2).
		Width(74).
		Render(card.String())

	if m.confirmDelete && m.detailCursor == 0 {
		rendered += "\n" + common.ConfirmStyle.Render("  Delete this blog? (y/n)")
	}
	return rendered
}

func (m Model) renderCommentThread() string {
	var b strings.Builder

	if m.loadingComments {
		b.WriteString("\n\n  " + m.spinner.View() + " Loading comments...")
		return b.String()
	}
	if len(m.rows) == 0 {
		b.WriteString("\n\n  " + common.TimestampStyle.Render("No comments yet. Press c to start the thread."))
		return b.String()
	}

	b.WriteString("\n\n  " + lipgloss.NewStyle().Bold(true).Underline(true).Render(fmt.Sprintf("Comments (%d)", len(m.rows))) + "\n")

	slots := m.detailSlots()
	start := m.detailStart
	if start < 0 {
		start = 0
	}
	end := min(start+slots, len(m.rows))

	for i := start; i < end; i++ {
		b.WriteString("\n" + m.renderCommentRow(i) + "\n")
	}
	if end < len(m.rows) {
		b.WriteString("\n  " + common.TimestampStyle.Render(fmt.Sprintf("... %d more", len(m.rows)-end)))
	}
	return b.String()
}

func (m Model) renderCommentRow(i int) string {
	row := m.rows[i]
	c := row.Comment
	indent := strings.Repeat("  ", row.Depth)

	author := common.AuthorStyle.Render("@" + c.Author)
	if c.IsOwn {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	timestamp := common.TimestampStyle.Render(common.RelativeTime(c.CreatedAt, time.Now()))

	var badges []string
	if c.Pinned {
		badges = append(badges, common.PinnedBadgeStyle.Render("📌 pinned"))
	}
	if c.EditedAt != nil {
		badges = append(badges, common.TimestampStyle.Render("(edited)"))
	}
	if m.pending[c.ID] {
		badges = append(badges, common.ConfirmStyle.Render("(syncing...)"))
	}
	header := fmt.Sprintf("  %s%s %s", indent, author, timestamp)
	if len(badges) > 0 {
		header += " " + strings.Join(badges, " ")
	}

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Render("┃ ")
	width := max(66-2*row.Depth, 20)
	var body strings.Builder
	for _, line := range strings.Split(lipgloss.NewStyle().Width(width).Render(c.Body), "\n") {
		body.WriteString("  " + indent + indicator + common.ContentStyle.Render(line) + "\n")
	}

	likeIcon := "♡"
	likeStyle := common.TimestampStyle
	if m.userID != "" && domain.HasLike(c.Likes, m.userID) {
		likeIcon = "♥"
		likeStyle = common.PinnedBadgeStyle
	}
	meta := fmt.Sprintf("  %s%s %d", indent, likeStyle.Render(likeIcon), len(c.Likes))
	if n := len(c.Children); n > 0 {
		meta += common.TimestampStyle.Render(fmt.Sprintf("  ↩ %d", n))
	}

	content := header + "\n" + strings.TrimSuffix(body.String(), "\n") + "\n" + meta

	if m.detailCursor == i+1 {
		content = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Render(content)
		if m.confirmCommentDelete {
			content += "\n" + common.ConfirmStyle.Render("  "+indent+"Delete this comment and its replies? (y/n)")
		}
	}
	return content
}
