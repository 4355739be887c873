package auth

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/app"
)

type mode int

const (
	loginMode mode = iota
	registerMode
)

// DoneMsg is sent when the auth flow finishes. A zero Session with a nil
// Err means the user backed out.
type DoneMsg struct {
	Session   app.Session
	Cancelled bool
}

// resultMsg carries the server's answer back into the form.
type resultMsg struct {
	session app.Session
	err     error
}

// Field indices, in tab order. Username only participates in register mode.
const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// Model holds the state for the login/register screen.
type Model struct {
	account app.AccountService
	mode    mode
	reason  string // Why the screen opened, e.g. "Log in to comment"

	inputs  [fieldCount]textinput.Model
	focus   int
	busy    bool
	errText string
}

// New creates the auth screen. A non-empty reason is shown above the form.
func New(account app.AccountService, reason string) Model {
	var inputs [fieldCount]textinput.Model

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 40
	username.Width = 40
	inputs[fieldUsername] = username

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 40
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	inputs[fieldPassword] = password

	m := Model{
		account: account,
		mode:    loginMode,
		reason:  reason,
		inputs:  inputs,
		focus:   fieldEmail,
	}
	m.inputs[fieldEmail].Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) firstField() int {
	if m.mode == registerMode {
		return fieldUsername
	}
	return fieldEmail
}

// Update handles messages for the auth screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		session := msg.session
		return m, func() tea.Msg { return DoneMsg{Session: session} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DoneMsg{Cancelled: true} }

		case "ctrl+r":
			// Flip between login and register; the typed values survive.
			if m.mode == loginMode {
				m.mode = registerMode
			} else {
				m.mode = loginMode
			}
			m.errText = ""
			return m.setFocus(m.firstField())

		case "tab", "down":
			next := m.focus + 1
			if next >= fieldCount {
				next = m.firstField()
			}
			return m.setFocus(next)

		case "shift+tab", "up":
			prev := m.focus - 1
			if prev < m.firstField() {
				prev = fieldPassword
			}
			return m.setFocus(prev)

		case "enter":
			if m.focus != fieldPassword {
				return m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) setFocus(i int) (Model, tea.Cmd) {
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	m.focus = i
	m.inputs[i].Focus()
	return m, textinput.Blink
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		m.errText = "Email and password are required."
		return m, nil
	}
	if m.mode == registerMode && username == "" {
		m.errText = "Pick a username."
		return m, nil
	}

	m.busy = true
	m.errText = ""
	account := m.account
	register := m.mode == registerMode
	return m, func() tea.Msg {
		var (
			session app.Session
			err     error
		)
		if register {
			session, err = account.Register(context.Background(), username, email, password)
		} else {
			session, err = account.Login(context.Background(), email, password)
		}
		return resultMsg{session: session, err: err}
	}
}
