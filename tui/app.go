package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/infra/editor"
	"github.com/Dawaman43/blog-site-frontend/tui/auth"
	"github.com/Dawaman43/blog-site-frontend/tui/common"
	"github.com/Dawaman43/blog-site-frontend/tui/compose"
	"github.com/Dawaman43/blog-site-frontend/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Blogs      app.BlogService
	Comments   app.CommentService
	Categories app.CategoryService
	Account    app.AccountService
	Store      app.Store
	Editor     *editor.EnvEditor
}

type activeView int

const (
	feedView activeView = iota
	composeView
	authView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	feed    feed.Model
	compose compose.Model
	auth    auth.Model
	keys    common.KeyMap
	status  string // Transient status message (e.g. "Blog published!")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed: feed.New(feed.Deps{
			Blogs:      deps.Blogs,
			Comments:   deps.Comments,
			Categories: deps.Categories,
			Account:    deps.Account,
			Store:      deps.Store,
		}),
		keys: common.DefaultKeyMap(),
	}
}

// sessionMsg carries the restored (or just-authenticated) user profile.
type sessionMsg struct {
	userID   string
	username string
	isAdmin  bool
	err      error
}

// Init starts the feed and, when a token is stored, restores the session.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.feed.Init()}
	if _, ok := a.deps.Store.Token(); ok {
		cmds = append(cmds, a.restoreSession())
	}
	return tea.Batch(cmds...)
}

func (a App) restoreSession() tea.Cmd {
	account := a.deps.Account
	return func() tea.Msg {
		user, err := account.CurrentUser(context.Background())
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{userID: user.ID, username: user.Username, isAdmin: user.IsAdmin}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.active == feedView && key.Matches(msg, a.keys.Quit) && !a.feed.IsInDetailView() {
			return a, tea.Quit
		}

	case sessionMsg:
		if msg.err != nil {
			// The stored token no longer works; drop it and stay logged out.
			_ = a.deps.Store.ClearToken()
			a.status = "Session expired. Press L to log in again."
			return a, nil
		}
		a.feed, _ = a.feed.Update(feed.SessionChangedMsg{
			UserID:   msg.userID,
			Username: msg.username,
			IsAdmin:  msg.isAdmin,
		})
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case feed.RequireLoginMsg:
		a.active = authView
		a.status = ""
		a.auth = auth.New(a.deps.Account, msg.Reason)
		return a, a.auth.Init()

	case auth.DoneMsg:
		a.active = feedView
		if msg.Cancelled {
			return a, nil
		}
		if err := a.deps.Store.SetToken(msg.Session.Token); err != nil {
			a.status = "Logged in, but saving the session failed: " + err.Error()
		} else {
			a.status = "Welcome, @" + msg.Session.User.Username + "!"
		}
		a.feed, _ = a.feed.Update(feed.SessionChangedMsg{
			UserID:   msg.Session.User.ID,
			Username: msg.Session.User.Username,
			IsAdmin:  msg.Session.User.IsAdmin,
		})
		return a, a.feed.Refresh()

	case feed.EditBlogMsg:
		a.active = composeView
		a.status = ""
		switch {
		case msg.Blog.ID != "":
			a.compose = compose.NewBlogEdit(a.deps.Editor, msg.Blog, msg.UseInline)
		case msg.UseInline:
			a.compose = compose.NewBlogInline()
		default:
			a.compose = compose.NewBlogEditor(a.deps.Editor)
		}
		return a, a.compose.Init()

	case feed.ComposeCommentMsg:
		a.active = composeView
		a.status = ""
		if msg.IsEdit {
			a.compose = compose.NewCommentEdit(msg.BlogID, msg.CommentID, msg.OldBody)
		} else {
			a.compose = compose.NewComment(msg.BlogID, msg.ParentID, msg.ReplyToUser)
		}
		return a, a.compose.Init()

	case compose.BlogDoneMsg:
		a.active = feedView
		a.feed, _ = a.feed.Update(feed.ResetFeedStateMsg{})
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Content == "" {
			a.status = "Cancelled."
			return a, nil
		}
		var cmd tea.Cmd
		if msg.IsEdit {
			a.status = "Saving..."
			a.feed, cmd = a.feed.Update(feed.UpdateOptimisticBlogMsg{
				ID:      msg.BlogID,
				Title:   msg.Title,
				Content: msg.Content,
			})
		} else {
			a.status = "Publishing..."
			a.feed, cmd = a.feed.Update(feed.AddOptimisticBlogMsg{
				LocalID: "local-" + uuid.NewString(),
				Title:   msg.Title,
				Content: msg.Content,
			})
		}
		return a, cmd

	case feed.BlogResultMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
		} else if msg.IsEdit {
			a.status = "Blog updated."
		} else {
			a.status = "Blog published!"
		}
		return a, cmd

	case compose.CommentDoneMsg:
		a.active = feedView
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Body == "" {
			a.status = ""
			return a, nil
		}
		var cmd tea.Cmd
		if msg.IsEdit {
			a.feed, cmd = a.feed.Update(feed.EditOptimisticCommentMsg{
				ID:   msg.CommentID,
				Body: msg.Body,
			})
		} else {
			a.feed, cmd = a.feed.Update(feed.AddOptimisticCommentMsg{
				LocalID:  "local-" + uuid.NewString(),
				ParentID: msg.ParentID,
				Body:     msg.Body,
			})
		}
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case feedView:
		updated, cmd := a.feed.Update(msg)
		a.feed = updated
		if _, ok := msg.(tea.KeyMsg); ok {
			a.status = ""
		}
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	case authView:
		updated, cmd := a.auth.Update(msg)
		a.auth = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	var s string
	switch a.active {
	case feedView:
		s = a.feed.View()
	case composeView:
		s = a.compose.View()
	case authView:
		s = a.auth.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render("  "+a.status)
	}
	return s
}
