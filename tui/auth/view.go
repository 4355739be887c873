package auth

import (
	"strings"

	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

// View renders the login/register form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("✍ BlogSite"))
	if m.mode == registerMode {
		b.WriteString("  Create account\n\n")
	} else {
		b.WriteString("  Log in\n\n")
	}

	if m.reason != "" {
		b.WriteString(common.TimestampStyle.Render("  "+m.reason) + "\n\n")
	}

	if m.mode == registerMode {
		b.WriteString("  " + m.inputs[fieldUsername].View() + "\n")
	}
	b.WriteString("  " + m.inputs[fieldEmail].View() + "\n")
	b.WriteString("  " + m.inputs[fieldPassword].View() + "\n\n")

	switch {
	case m.busy:
		b.WriteString(common.StatusBarStyle.Render("  Signing in..."))
	case m.errText != "":
		b.WriteString(common.ErrorStyle.Render("  " + m.errText))
	default:
		action := "log in"
		flip := "register instead"
		if m.mode == registerMode {
			action = "create account"
			flip = "log in instead"
		}
		b.WriteString(common.StatusBarStyle.Render(
			"  enter: " + action + " • ctrl+r: " + flip + " • esc: back"))
	}

	return b.String()
}
