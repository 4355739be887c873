package feed

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleSearchMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SearchTickMsg:
		// A newer keystroke re-armed the timer; this tick is cancelled.
		if msg.Seq != m.searchSeq || !m.searchInput {
			return m, nil
		}
		term := strings.TrimSpace(m.searchBuffer)
		if term == "" {
			m.suggestions = nil
			return m, nil
		}
		return m, m.fetchSuggestions(term)

	case SuggestionsLoadedMsg:
		// No sequence guard here: an in-flight response from an older
		// keystroke is not aborted and may overwrite a newer result.
		if !m.searchInput {
			return m, nil
		}
		if msg.Err != nil {
			// Suggestions are best-effort; a failed fetch just shows none.
			m.suggestions = nil
			return m, nil
		}
		m.suggestions = msg.Titles
		return m, nil
	}

	return m, nil
}

// handleSearchInputKey consumes keys while the search box is focused.
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput = false
		m.searchBuffer = ""
		m.suggestions = nil
		return m, nil

	case "enter":
		m.searchInput = false
		m.suggestions = nil
		term := strings.TrimSpace(m.searchBuffer)
		if term == m.activeSearch {
			return m, nil
		}
		m.activeSearch = term
		m.loading = true
		m.items = nil
		m.cursor = 0
		m.startIndex = 0
		m.feedReqSeq++
		return m, m.fetchBlogs(m.feedReqSeq)

	case "backspace":
		if m.searchBuffer != "" {
			r := []rune(m.searchBuffer)
			m.searchBuffer = string(r[:len(r)-1])
		}
		m.searchSeq++
		return m, m.scheduleSearchTick(m.searchSeq)

	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.searchBuffer += string(msg.Runes)
		case tea.KeySpace:
			m.searchBuffer += " "
		default:
			return m, nil
		}
		m.searchSeq++
		return m, m.scheduleSearchTick(m.searchSeq)
	}
}

// handleSubscribeInputKey consumes keys while the newsletter email prompt is
// focused.
func (m Model) handleSubscribeInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.subscribeInput = false
		m.subscribeBuffer = ""
		return m, nil

	case "enter":
		email := strings.TrimSpace(m.subscribeBuffer)
		m.subscribeInput = false
		m.subscribeBuffer = ""
		if email == "" || !strings.Contains(email, "@") {
			m.notice = "Enter a valid email address."
			return m, nil
		}
		m.notice = "Subscribing..."
		return m, m.subscribe(email)

	case "backspace":
		if m.subscribeBuffer != "" {
			r := []rune(m.subscribeBuffer)
			m.subscribeBuffer = string(r[:len(r)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.subscribeBuffer += string(msg.Runes)
		}
	}
	return m, nil
}
