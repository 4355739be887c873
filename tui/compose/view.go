package compose

import (
	"fmt"
	"strings"

	"github.com/Dawaman43/blog-site-frontend/domain"
	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	if m.mode == editorMode && !m.bodyDone {
		return m.status + "\n"
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("✍ BlogSite"))

	switch m.kind {
	case commentKind:
		if m.isEdit {
			b.WriteString("  Edit comment\n\n")
		} else if m.replyTo != "" {
			b.WriteString("  Replying to " + common.AuthorStyle.Render("@"+m.replyTo) + "\n\n")
		} else {
			b.WriteString("  New comment\n\n")
		}
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")
		if m.status != "" {
			b.WriteString(common.ErrorStyle.Render("  " + m.status))
		} else {
			b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf(
				"  ctrl+d: post • esc: cancel • %d/%d chars",
				len([]rune(m.textarea.Value())), domain.MaxCommentLength)))
		}

	case blogKind:
		if m.isEdit {
			b.WriteString("  Edit blog\n\n")
		} else {
			b.WriteString("  New blog\n\n")
		}
		b.WriteString("  " + m.title.View() + "\n\n")
		if m.bodyDone {
			b.WriteString(common.TimestampStyle.Render(fmt.Sprintf(
				"  Body captured from editor (%d chars). Set the title and press enter.",
				len([]rune(m.initial)))) + "\n\n")
		} else {
			b.WriteString(m.textarea.View())
			b.WriteString("\n\n")
		}
		if m.status != "" {
			b.WriteString(common.ErrorStyle.Render("  " + m.status))
		} else if m.bodyDone {
			b.WriteString(common.StatusBarStyle.Render("  enter: publish • esc: cancel"))
		} else {
			b.WriteString(common.StatusBarStyle.Render("  tab: switch field • ctrl+d: publish • esc: cancel"))
		}
	}

	return b.String()
}
