package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// commentService implements app.CommentService against the platform API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the platform API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// apiComment is the wire shape of a comment. Replies arrive pre-nested; the
// server assembles the tree from parentComment links before responding.
type apiComment struct {
	ID            string       `json:"_id"`
	Blog          string       `json:"blog"`
	User          apiUserRef   `json:"user"`
	Content       string       `json:"content"`
	Likes         []string     `json:"likes"`
	ParentComment string       `json:"parentComment"`
	IsPinned      bool         `json:"isPinned"`
	IsEdited      bool         `json:"isEdited"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
	Replies       []apiComment `json:"replies"`
}

func (s *commentService) List(ctx context.Context, blogID string) ([]domain.Comment, error) {
	data, err := s.client.Get(ctx, "/api/comments/blog/"+url.PathEscape(blogID))
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}

	var payload struct {
		Comments []apiComment `json:"comments"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	return mapComments(payload.Comments), nil
}

func (s *commentService) Create(ctx context.Context, blogID, parentID, body string) (domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if len([]rune(body)) > domain.MaxCommentLength {
		return domain.Comment{}, domain.ErrCommentTooLong
	}

	req := map[string]any{
		"blog":    blogID,
		"content": body,
	}
	if parentID != "" {
		req["parentComment"] = parentID
	}
	data, err := s.client.Post(ctx, "/api/comments", req)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("posting comment: %w", err)
	}
	return parseCommentPayload(data)
}

func (s *commentService) Edit(ctx context.Context, id, body string) (domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if len([]rune(body)) > domain.MaxCommentLength {
		return domain.Comment{}, domain.ErrCommentTooLong
	}

	data, err := s.client.Put(ctx, "/api/comments/"+url.PathEscape(id), map[string]any{
		"content": body,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("editing comment: %w", err)
	}
	return parseCommentPayload(data)
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Delete(ctx, "/api/comments/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func (s *commentService) Like(ctx context.Context, id string) ([]string, error) {
	data, err := s.client.Put(ctx, "/api/comments/"+url.PathEscape(id)+"/like", nil)
	if err != nil {
		return nil, fmt.Errorf("liking comment: %w", err)
	}

	var payload struct {
		Likes []string `json:"likes"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing likes: %w", err)
	}
	return payload.Likes, nil
}

func parseCommentPayload(data []byte) (domain.Comment, error) {
	var payload struct {
		Comment apiComment `json:"comment"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Comment{}, fmt.Errorf("parsing comment response: %w", err)
	}
	return mapComment(payload.Comment), nil
}

func mapComments(in []apiComment) []domain.Comment {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Comment, 0, len(in))
	for _, c := range in {
		out = append(out, mapComment(c))
	}
	return out
}

func mapComment(c apiComment) domain.Comment {
	createdAt, _ := time.Parse(time.RFC3339, c.CreatedAt)

	var editedAt *time.Time
	if c.IsEdited {
		if t, err := time.Parse(time.RFC3339, c.UpdatedAt); err == nil {
			editedAt = &t
		}
	}

	return domain.Comment{
		ID:        c.ID,
		BlogID:    c.Blog,
		AuthorID:  c.User.ID,
		Author:    c.User.Username,
		Body:      html.UnescapeString(c.Content),
		CreatedAt: createdAt,
		EditedAt:  editedAt,
		Likes:     c.Likes,
		ParentID:  c.ParentComment,
		Pinned:    c.IsPinned,
		Children:  mapComments(c.Replies),
	}
}
