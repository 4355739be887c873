package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding
	Refresh     key.Binding
	Search      key.Binding // /: search blogs with live suggestions
	Categories  key.Binding // C: browse categories
	Bookmarks   key.Binding // B: toggle bookmarked-only feed
	Bookmark    key.Binding // b: bookmark/unbookmark the selected blog
	NewEditor   key.Binding // n: write a blog via $EDITOR
	NewInline   key.Binding // N: write a blog via inline textarea
	Edit        key.Binding // e: edit own blog/comment
	Delete      key.Binding // d: delete own blog/comment
	Like        key.Binding // l: like/unlike a comment
	Reply       key.Binding // c: comment / reply
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding // enter: open blog detail
	Back        key.Binding // esc: leave detail / close menus
	Login       key.Binding // L: open the login screen
	Subscribe   key.Binding // S: newsletter signup
	ThemeToggle key.Binding // T: switch dark/light theme
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Categories: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "categories"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmarked only"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),
		NewEditor: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new blog ($EDITOR)"),
		),
		NewInline: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new blog (inline)"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Reply: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log in"),
		),
		Subscribe: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "subscribe"),
		),
		ThemeToggle: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
	}
}
