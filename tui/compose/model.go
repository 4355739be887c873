package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/domain"
	"github.com/Dawaman43/blog-site-frontend/infra/editor"
)

// --- Mode ---

type kind int

const (
	blogKind kind = iota
	commentKind
)

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// BlogDoneMsg is sent when blog composing is complete. An empty Content
// means the user cancelled.
type BlogDoneMsg struct {
	Title   string
	Content string
	BlogID  string // Set when editing
	IsEdit  bool
	Err     error
}

// CommentDoneMsg is sent when comment composing is complete. An empty Body
// means the user cancelled.
type CommentDoneMsg struct {
	BlogID    string
	ParentID  string
	Body      string
	CommentID string // Set when editing
	IsEdit    bool
	Err       error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the compose view: a blog draft (title plus body,
// inline or via $EDITOR) or a comment draft (inline only).
type Model struct {
	kind kind
	mode mode

	editor  *editor.EnvEditor
	status  string
	isEdit  bool
	initial string // Body before the edit began

	// Blog drafts
	title    textinput.Model
	blogID   string
	bodyDone bool // Editor mode: body captured, title being typed

	// Comment drafts
	blogRef   string
	parentID  string
	replyTo   string
	commentID string

	textarea textarea.Model
	focusTop bool // True when the title input has focus
}

// NewBlogEditor composes a new blog with the body written in $EDITOR.
func NewBlogEditor(ed *editor.EnvEditor) Model {
	m := Model{
		kind:     blogKind,
		mode:     editorMode,
		editor:   ed,
		status:   "Opening editor...",
		title:    newTitleInput(""),
		focusTop: true,
	}
	return m
}

// NewBlogInline composes a new blog with an inline textarea.
func NewBlogInline() Model {
	return Model{
		kind:     blogKind,
		mode:     inlineMode,
		title:    newTitleInput(""),
		textarea: newBodyArea("Tell the story...", "", 12),
		focusTop: true,
	}
}

// NewBlogEdit composes an update for an existing blog.
func NewBlogEdit(ed *editor.EnvEditor, blog domain.Blog, useInline bool) Model {
	m := Model{
		kind:    blogKind,
		editor:  ed,
		isEdit:  true,
		blogID:  blog.ID,
		initial: blog.Content,
		title:   newTitleInput(blog.Title),
	}
	if useInline || ed == nil {
		m.mode = inlineMode
		m.textarea = newBodyArea("", blog.Content, 12)
		m.focusTop = true
	} else {
		m.mode = editorMode
		m.status = "Opening editor..."
	}
	return m
}

// NewComment composes a reply. An empty parentID makes it top-level;
// replyTo is the username shown in the "replying to" label.
func NewComment(blogID, parentID, replyTo string) Model {
	return Model{
		kind:     commentKind,
		mode:     inlineMode,
		blogRef:  blogID,
		parentID: parentID,
		replyTo:  replyTo,
		textarea: newBodyArea("Say something...", "", 6),
	}
}

// NewCommentEdit composes an edit of an existing comment.
func NewCommentEdit(blogID, commentID, oldBody string) Model {
	return Model{
		kind:      commentKind,
		mode:      inlineMode,
		isEdit:    true,
		blogRef:   blogID,
		commentID: commentID,
		initial:   oldBody,
		textarea:  newBodyArea("", oldBody, 6),
	}
}

func newTitleInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Blog title"
	ti.CharLimit = 200
	ti.Width = 70
	ti.SetValue(value)
	ti.Focus()
	return ti
}

func newBodyArea(placeholder, value string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(height)
	ta.SetValue(value)
	ta.Focus()
	return ta
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	if m.mode == editorMode {
		return m.launchEditor()
	}
	if m.kind == blogKind && m.focusTop {
		return textinput.Blink
	}
	return textarea.Blink
}

// launchEditor prepares the editor command and uses tea.Exec to suspend
// Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.initial)
	if err != nil {
		return m.fail(fmt.Errorf("preparing editor: %w", err))
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.fail(fmt.Errorf("editor: %w", msg.err))
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, m.fail(err)
		}
		if content == "" || (m.isEdit && content == m.initial) {
			return m, m.cancel()
		}
		// Body captured; the title still needs typing (or confirming).
		m.bodyDone = true
		m.initial = content
		m.status = ""
		m.focusTop = true
		return m, textinput.Blink

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.passThrough(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.cancel()

	case "tab":
		if m.kind == blogKind && m.mode == inlineMode {
			m.focusTop = !m.focusTop
			if m.focusTop {
				m.textarea.Blur()
				m.title.Focus()
				return m, textinput.Blink
			}
			m.title.Blur()
			m.textarea.Focus()
			return m, textarea.Blink
		}

	case "enter":
		// Enter submits a captured-editor-body blog from the title line;
		// everywhere else it is regular typing.
		if m.kind == blogKind && m.bodyDone {
			return m.submitBlog(m.initial)
		}

	case "ctrl+d":
		return m.submit()
	}
	return m.passThrough(msg)
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.kind == commentKind {
		body := strings.TrimSpace(m.textarea.Value())
		if body == "" || (m.isEdit && body == m.initial) {
			return m, m.cancel()
		}
		if len([]rune(body)) > domain.MaxCommentLength {
			m.status = fmt.Sprintf("Comments are limited to %d characters.", domain.MaxCommentLength)
			return m, nil
		}
		return m, done(CommentDoneMsg{
			BlogID:    m.blogRef,
			ParentID:  m.parentID,
			Body:      body,
			CommentID: m.commentID,
			IsEdit:    m.isEdit,
		})
	}

	body := m.initial
	if m.mode == inlineMode {
		body = strings.TrimSpace(m.textarea.Value())
	}
	return m.submitBlog(body)
}

func (m Model) submitBlog(body string) (Model, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	if title == "" || body == "" {
		m.status = "A blog needs both a title and content."
		return m, nil
	}
	return m, done(BlogDoneMsg{
		Title:   title,
		Content: body,
		BlogID:  m.blogID,
		IsEdit:  m.isEdit,
	})
}

func (m Model) passThrough(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode != inlineMode && !m.bodyDone {
		return m, nil
	}
	var cmd tea.Cmd
	if m.kind == blogKind && m.focusTop {
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) cancel() tea.Cmd {
	if m.kind == commentKind {
		return done(CommentDoneMsg{BlogID: m.blogRef, CommentID: m.commentID, IsEdit: m.isEdit})
	}
	return done(BlogDoneMsg{BlogID: m.blogID, IsEdit: m.isEdit})
}

func (m Model) fail(err error) tea.Cmd {
	if m.kind == commentKind {
		return done(CommentDoneMsg{BlogID: m.blogRef, CommentID: m.commentID, IsEdit: m.isEdit, Err: err})
	}
	return done(BlogDoneMsg{BlogID: m.blogID, IsEdit: m.isEdit, Err: err})
}

func done(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
