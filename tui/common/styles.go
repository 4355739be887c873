package common

import "github.com/charmbracelet/lipgloss"

// Theme names as persisted in the local store.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// palette holds the colors that differ between themes.
type palette struct {
	accent    lipgloss.Color
	secondary lipgloss.Color
	dim       lipgloss.Color
	text      lipgloss.Color
	author    lipgloss.Color
	danger    lipgloss.Color
	border    lipgloss.Color
}

var darkPalette = palette{
	accent:    lipgloss.Color("#FF6600"),
	secondary: lipgloss.Color("#A6DA95"),
	dim:       lipgloss.Color("#6E738D"),
	text:      lipgloss.Color("#CAD3F5"),
	author:    lipgloss.Color("#7DC4E4"),
	danger:    lipgloss.Color("#ED8796"),
	border:    lipgloss.Color("#45475A"),
}

var lightPalette = palette{
	accent:    lipgloss.Color("#D14D00"),
	secondary: lipgloss.Color("#2E7D32"),
	dim:       lipgloss.Color("#7A7A7A"),
	text:      lipgloss.Color("#24292F"),
	author:    lipgloss.Color("#0969DA"),
	danger:    lipgloss.Color("#CF222E"),
	border:    lipgloss.Color("#D0D7DE"),
}

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle lipgloss.Style

	// CategoryStyle styles the active category badge next to the title.
	CategoryStyle lipgloss.Style

	// TaglineStyle styles the app's tagline.
	TaglineStyle lipgloss.Style

	// AuthorStyle styles blog and comment author names.
	AuthorStyle lipgloss.Style

	// TimestampStyle styles timestamps.
	TimestampStyle lipgloss.Style

	// ContentStyle styles blog and comment body text.
	ContentStyle lipgloss.Style

	// SelectedStyle highlights the currently selected list item.
	SelectedStyle lipgloss.Style

	// OwnBadgeStyle highlights content that belongs to the user.
	OwnBadgeStyle lipgloss.Style

	// PinnedBadgeStyle marks pinned comments.
	PinnedBadgeStyle lipgloss.Style

	// BookmarkBadgeStyle marks bookmarked blogs.
	BookmarkBadgeStyle lipgloss.Style

	// UnselectedStyle gives unselected items a subtle greyed-out border.
	UnselectedStyle lipgloss.Style

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle lipgloss.Style

	// ConfirmStyle styles delete confirmation prompts.
	ConfirmStyle lipgloss.Style

	// ErrorStyle styles error messages.
	ErrorStyle lipgloss.Style

	// SuccessStyle styles success messages.
	SuccessStyle lipgloss.Style
)

func init() {
	SetTheme(ThemeDark)
}

// SetTheme rebuilds the package styles for the named theme. Unknown names
// fall back to dark. The UI is single-threaded, so swapping styles between
// renders is safe.
func SetTheme(name string) {
	p := darkPalette
	if name == ThemeLight {
		p = lightPalette
	}

	AppTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.accent).
		Padding(1, 2, 0, 1)

	CategoryStyle = lipgloss.NewStyle().
		Foreground(p.secondary).
		Bold(true)

	TaglineStyle = lipgloss.NewStyle().
		Foreground(p.dim).
		Italic(true).
		MarginLeft(1)

	AuthorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.author)

	TimestampStyle = lipgloss.NewStyle().
		Foreground(p.dim)

	ContentStyle = lipgloss.NewStyle().
		Foreground(p.text)

	SelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 1)

	OwnBadgeStyle = lipgloss.NewStyle().
		Foreground(p.secondary).
		Bold(true).
		MarginLeft(1)

	PinnedBadgeStyle = lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true)

	BookmarkBadgeStyle = lipgloss.NewStyle().
		Foreground(p.secondary).
		Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.dim).
		Padding(1, 0, 0, 0)

	ConfirmStyle = lipgloss.NewStyle().
		Foreground(p.danger).
		Bold(true).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.danger).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.secondary).
		Bold(true)
}
