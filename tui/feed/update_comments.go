package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// handleCommentMsg applies comment mutations optimistically and reconciles
// them when the server answers. The local forest is the source of truth for
// rendering; a failed mutation rolls it back or refetches the thread.
func (m Model) handleCommentMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AddOptimisticCommentMsg:
		if !m.showDetail {
			return m, nil
		}
		node := domain.Comment{
			ID:        msg.LocalID,
			BlogID:    m.blog.ID,
			AuthorID:  m.userID,
			Author:    m.username,
			Body:      msg.Body,
			CreatedAt: time.Now(),
			ParentID:  msg.ParentID,
			IsOwn:     true,
		}
		m.forest = domain.InsertReply(m.forest, msg.ParentID, node)
		m.pending[msg.LocalID] = true
		m.rebuildRows()
		return m, m.postComment(msg.LocalID, m.blog.ID, msg.ParentID, msg.Body)

	case CommentPostedMsg:
		delete(m.pending, msg.LocalID)
		if !m.showDetail {
			return m, nil
		}
		if msg.Err != nil {
			// The local node may have gained replies meanwhile; a refetch is
			// simpler and safer than a surgical rollback.
			m.forest = domain.RemoveComment(m.forest, msg.LocalID)
			m.rebuildRows()
			m.notice = "Couldn't post comment: " + msg.Err.Error()
			return m, m.fetchComments(m.blog.ID)
		}
		// Swap the placeholder for the server's node, keeping its position.
		real := msg.Comment
		real.IsOwn = true
		m.forest = domain.RemoveComment(m.forest, msg.LocalID)
		m.forest = domain.InsertReply(m.forest, msg.ParentID, real)
		m.rebuildRows()
		return m, nil

	case EditOptimisticCommentMsg:
		if !m.showDetail || m.pending[msg.ID] {
			return m, nil
		}
		old, ok := findComment(m.forest, msg.ID)
		if !ok {
			return m, nil
		}
		now := time.Now()
		m.forest = domain.PatchComment(m.forest, msg.ID, domain.CommentPatch{
			Body:     &msg.Body,
			EditedAt: &now,
		})
		m.pending[msg.ID] = true
		m.rebuildRows()
		return m, m.editComment(msg.ID, msg.Body, old.Body)

	case CommentEditedMsg:
		delete(m.pending, msg.ID)
		if !m.showDetail {
			return m, nil
		}
		if msg.Err != nil {
			m.forest = domain.PatchComment(m.forest, msg.ID, domain.CommentPatch{
				Body: &msg.OldBody,
			})
			m.rebuildRows()
			m.notice = "Couldn't edit comment: " + msg.Err.Error()
			return m, nil
		}
		m.forest = domain.PatchComment(m.forest, msg.ID, domain.CommentPatch{
			Body:     &msg.Comment.Body,
			EditedAt: msg.Comment.EditedAt,
		})
		m.rebuildRows()
		return m, nil

	case LikeCommentMsg:
		if !m.showDetail || m.pending[msg.ID] {
			return m, nil
		}
		row, ok := findComment(m.forest, msg.ID)
		if !ok {
			return m, nil
		}
		m.forest = domain.SetCommentLikes(m.forest, msg.ID, domain.ToggleLike(row.Likes, m.userID))
		m.pending[msg.ID] = true
		m.rebuildRows()
		return m, m.likeComment(msg.ID)

	case CommentLikedMsg:
		delete(m.pending, msg.ID)
		if !m.showDetail {
			return m, nil
		}
		if msg.Err != nil {
			// Undo the local toggle; the server never saw it.
			row, ok := findComment(m.forest, msg.ID)
			if ok {
				m.forest = domain.SetCommentLikes(m.forest, msg.ID, domain.ToggleLike(row.Likes, m.userID))
			}
			m.rebuildRows()
			m.notice = "Couldn't update like: " + msg.Err.Error()
			return m, nil
		}
		// The server's list wins over whatever we guessed.
		m.forest = domain.SetCommentLikes(m.forest, msg.ID, msg.Likes)
		m.rebuildRows()
		return m, nil

	case DeleteOptimisticCommentMsg:
		if !m.showDetail || m.pending[msg.ID] {
			return m, nil
		}
		m.forest = domain.RemoveComment(m.forest, msg.ID)
		m.pending[msg.ID] = true
		m.rebuildRows()
		return m, m.deleteComment(msg.ID)

	case CommentDeletedMsg:
		delete(m.pending, msg.ID)
		if !m.showDetail {
			return m, nil
		}
		if msg.Err != nil {
			// The subtree is gone locally and we no longer have it; restore
			// from the server.
			m.notice = "Couldn't delete comment: " + msg.Err.Error()
			m.loadingComments = true
			return m, m.fetchComments(m.blog.ID)
		}
		return m, nil
	}

	return m, nil
}

// findComment returns the first comment matching id in depth-first order.
func findComment(forest []domain.Comment, id string) (domain.Comment, bool) {
	for i := range forest {
		if forest[i].ID == id {
			return forest[i], true
		}
		if c, ok := findComment(forest[i].Children, id); ok {
			return c, true
		}
	}
	return domain.Comment{}, false
}
