package feed

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleSessionMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChangedMsg:
		m.userID = msg.UserID
		m.username = msg.Username
		m.isAdmin = msg.IsAdmin
		// Ownership flags were stamped for the previous session.
		for i := range m.items {
			m.items[i].Blog.IsOwn = m.userID != "" && m.items[i].Blog.AuthorID == m.userID
		}
		if m.showDetail {
			m.blog.IsOwn = m.userID != "" && m.blog.AuthorID == m.userID
			m.forest = m.markOwnComments(m.forest)
			m.rebuildRows()
		}
		return m, nil

	case SubscribeResultMsg:
		if msg.Err != nil {
			m.notice = "Subscription failed: " + msg.Err.Error()
		} else {
			m.notice = "Subscribed. Check your inbox."
		}
		return m, nil
	}

	return m, nil
}
