package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureFeedCursorVisible()
		m.ensureDetailCursorVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case BlogsLoadedMsg, BlogsErrorMsg, BlogsPageLoadedMsg, BlogsPageErrorMsg, CategoriesLoadedMsg:
		return m.handleFeedLoadingMsg(msg)
	case SearchTickMsg, SuggestionsLoadedMsg:
		return m.handleSearchMsg(msg)
	case BlogDetailLoadedMsg, CommentsLoadedMsg, ResetFeedStateMsg:
		return m.handleDetailMsg(msg)
	case AddOptimisticCommentMsg, CommentPostedMsg,
		EditOptimisticCommentMsg, CommentEditedMsg,
		LikeCommentMsg, CommentLikedMsg,
		DeleteOptimisticCommentMsg, CommentDeletedMsg:
		return m.handleCommentMsg(msg)
	case AddOptimisticBlogMsg, UpdateOptimisticBlogMsg, BlogResultMsg, BlogDeletedMsg:
		return m.handleBlogMutationMsg(msg)
	case SessionChangedMsg, SubscribeResultMsg:
		return m.handleSessionMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
