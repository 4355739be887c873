package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
	"github.com/Dawaman43/blog-site-frontend/tui/common"
)

const (
	defaultLimit    = 20
	prefetchTrigger = 3
	suggestLimit    = 5

	// searchDebounce is how long the search box stays quiet before a
	// suggestion fetch fires. Each keystroke re-arms the timer.
	searchDebounce = 300 * time.Millisecond
)

// --- Feed loading messages ---

// BlogsLoadedMsg is sent when the blog list fetch completes successfully.
type BlogsLoadedMsg struct {
	Blogs    []domain.Blog
	QueryKey string
	ReqSeq   int
}

// BlogsErrorMsg is sent when the blog list fetch fails.
type BlogsErrorMsg struct {
	Err      error
	QueryKey string
	ReqSeq   int
}

// BlogsPageLoadedMsg is sent when an older feed page is loaded.
type BlogsPageLoadedMsg struct {
	Blogs    []domain.Blog
	QueryKey string
	ReqSeq   int
}

// BlogsPageErrorMsg is sent when loading an older feed page fails.
type BlogsPageErrorMsg struct {
	Err      error
	QueryKey string
	ReqSeq   int
}

// CategoriesLoadedMsg carries the category list for the browse menu.
type CategoriesLoadedMsg struct {
	Categories []domain.Category
	Err        error
}

// --- Search messages ---

// SearchTickMsg fires when the debounce timer for a keystroke expires. A
// stale Seq means a newer keystroke re-armed the timer and this one is
// cancelled.
type SearchTickMsg struct {
	Seq int
}

// SuggestionsLoadedMsg carries search suggestions. It is applied without a
// sequence guard: a late response from a previous keystroke can overwrite a
// newer result until the next timer fires.
type SuggestionsLoadedMsg struct {
	Term   string
	Titles []string
	Err    error
}

// --- Detail messages ---

// BlogDetailLoadedMsg is sent when the full blog fetch finishes.
type BlogDetailLoadedMsg struct {
	Slug string
	Blog domain.Blog
	Err  error
}

// CommentsLoadedMsg carries the comment forest for the open blog.
type CommentsLoadedMsg struct {
	BlogID string
	Forest []domain.Comment
	Err    error
}

// --- Optimistic comment messages ---

// AddOptimisticCommentMsg inserts a local reply into the forest before the
// server confirms it.
type AddOptimisticCommentMsg struct {
	LocalID  string
	ParentID string
	Body     string
}

// CommentPostedMsg is the server result for a posted comment.
type CommentPostedMsg struct {
	LocalID  string
	ParentID string
	Comment  domain.Comment
	Err      error
}

// EditOptimisticCommentMsg applies an edit locally.
type EditOptimisticCommentMsg struct {
	ID   string
	Body string
}

// CommentEditedMsg is the server result for an edit.
type CommentEditedMsg struct {
	ID      string
	OldBody string
	Comment domain.Comment
	Err     error
}

// LikeCommentMsg toggles the user's like on a comment locally.
type LikeCommentMsg struct {
	ID string
}

// CommentLikedMsg is the server result for a like toggle, carrying the
// authoritative likes list.
type CommentLikedMsg struct {
	ID    string
	Likes []string
	Err   error
}

// DeleteOptimisticCommentMsg removes a comment subtree locally.
type DeleteOptimisticCommentMsg struct {
	ID string
}

// CommentDeletedMsg is the server result for a comment deletion.
type CommentDeletedMsg struct {
	ID  string
	Err error
}

// --- Blog mutation messages (admin flow) ---

// BlogStatus tracks an optimistic item's reconciliation state.
type BlogStatus int

const (
	StatusNormal BlogStatus = iota
	StatusPendingCreate
	StatusPendingUpdate
	StatusPendingDelete
	StatusFailed
)

// BlogItem wraps a blog with its optimistic status.
type BlogItem struct {
	Blog       domain.Blog
	Status     BlogStatus
	Err        error
	OldTitle   string // For rollback
	OldContent string
}

// AddOptimisticBlogMsg prepends a pending blog after composing.
type AddOptimisticBlogMsg struct {
	LocalID string
	Title   string
	Content string
}

// UpdateOptimisticBlogMsg applies a blog edit locally.
type UpdateOptimisticBlogMsg struct {
	ID      string
	Title   string
	Content string
}

// BlogResultMsg is the server result for a blog create or update.
type BlogResultMsg struct {
	ID     string // Local or server ID
	Blog   domain.Blog
	IsEdit bool
	Err    error
}

// BlogDeletedMsg is the server result for a blog deletion.
type BlogDeletedMsg struct {
	ID  string
	Err error
}

// --- Messages to the root model ---

// EditBlogMsg asks the root model to open the blog composer for an edit.
type EditBlogMsg struct {
	Blog      domain.Blog
	UseInline bool
}

// ComposeCommentMsg asks the root model to open the comment composer.
type ComposeCommentMsg struct {
	BlogID      string
	ParentID    string
	ReplyToUser string // For the "replying to @X" label
	IsEdit      bool
	CommentID   string
	OldBody     string
}

// RequireLoginMsg asks the root model to show the login screen.
type RequireLoginMsg struct {
	Reason string
}

// SubscribeResultMsg is the server result for a newsletter signup.
type SubscribeResultMsg struct {
	Err error
}

// SessionChangedMsg tells the feed who is logged in.
type SessionChangedMsg struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// ResetFeedStateMsg closes menus and the detail view.
type ResetFeedStateMsg struct {
	ForceReset bool
}

// CommentRow is one line of the flattened reply tree, in display order.
type CommentRow struct {
	Comment domain.Comment
	Depth   int
}

// --- Model ---

type modelServices struct {
	blogs      app.BlogService
	comments   app.CommentService
	categories app.CategoryService
	account    app.AccountService
	store      app.Store
}

type feedState struct {
	items         []BlogItem
	cursor        int
	loading       bool
	loadingMore   bool
	hasMore       bool
	page          int
	err           error
	notice        string
	feedReqSeq    int
	category      string // Active category slug; empty = all
	bookmarksOnly bool
}

type searchState struct {
	searchInput  bool
	searchBuffer string
	activeSearch string
	searchSeq    int
	suggestions  []string
}

type categoryState struct {
	showCategories    bool
	categories        []domain.Category
	categoryCursor    int
	loadingCategories bool
}

type detailState struct {
	showDetail           bool
	detailSlug           string
	blog                 domain.Blog
	loadingBlog          bool
	detailErr            error
	forest               []domain.Comment
	rows                 []CommentRow
	loadingComments      bool
	detailCursor         int // 0 for the blog body, 1...n for comment rows
	detailStart          int
	confirmDelete        bool // Blog delete, feed list
	confirmCommentDelete bool
	pending              map[string]bool // Comment IDs with an outstanding request
}

type subscribeState struct {
	subscribeInput  bool
	subscribeBuffer string
}

type sessionState struct {
	userID   string
	username string
	isAdmin  bool
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	startIndex int // First visible item in the list (for scrolling)
}

// Model holds the state for the feed (home) view.
type Model struct {
	modelServices
	feedState
	searchState
	categoryState
	detailState
	subscribeState
	sessionState
	uiState
}

// Deps bundles the services the feed needs.
type Deps struct {
	Blogs      app.BlogService
	Comments   app.CommentService
	Categories app.CategoryService
	Account    app.AccountService
	Store      app.Store
}

// New creates a feed model with injected dependencies.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	return Model{
		modelServices: modelServices{
			blogs:      deps.Blogs,
			comments:   deps.Comments,
			categories: deps.Categories,
			account:    deps.Account,
			store:      deps.Store,
		},
		feedState: feedState{
			loading: true,
			hasMore: true,
			page:    1,
		},
		detailState: detailState{
			pending: make(map[string]bool),
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchBlogs(m.feedReqSeq),
		m.fetchCategories(),
		m.spinner.Tick,
	)
}

// Refresh returns a Cmd that re-fetches the feed.
func (m Model) Refresh() tea.Cmd {
	return m.fetchBlogs(m.feedReqSeq)
}

// IsInDetailView reports whether the detail view is open, so the root model
// can route quit/back keys correctly.
func (m Model) IsInDetailView() bool {
	return m.showDetail
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}
