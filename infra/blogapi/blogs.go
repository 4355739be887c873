package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
)

// detailTimeout bounds the blog detail fetch. The list view stays usable
// while a slug lookup hangs, so this is the one request the client aborts.
const detailTimeout = 10 * time.Second

// blogService implements app.BlogService against the platform API.
type blogService struct {
	client *Client
}

// NewBlogService creates a BlogService backed by the platform API.
func NewBlogService(client *Client) *blogService {
	return &blogService{client: client}
}

// apiBlog is the wire shape of a blog document.
type apiBlog struct {
	ID        string      `json:"_id"`
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Content   string      `json:"content"` // HTML from the web editor
	Author    apiUserRef  `json:"author"`
	Category  apiCategory `json:"category"`
	Tags      []string    `json:"tags"`
	Image     string      `json:"image"`
	Likes     []string    `json:"likes"`
	Views     int         `json:"views"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

type apiUserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type apiCategory struct {
	ID    string `json:"_id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"blogCount"`
}

func (s *blogService) List(ctx context.Context, q app.ListQuery) ([]domain.Blog, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	params.Set("limit", strconv.Itoa(limit))

	data, err := s.client.Get(ctx, "/api/blogs?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching blogs: %w", err)
	}

	var payload struct {
		Blogs []apiBlog `json:"blogs"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing blog list: %w", err)
	}

	blogs := make([]domain.Blog, 0, len(payload.Blogs))
	for _, b := range payload.Blogs {
		blogs = append(blogs, mapBlog(b))
	}
	return blogs, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, detailTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, "/api/blogs/slug/"+url.PathEscape(slug))
	if err != nil {
		return domain.Blog{}, fmt.Errorf("fetching blog %s: %w", slug, err)
	}

	var payload struct {
		Blog apiBlog `json:"blog"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Blog{}, fmt.Errorf("parsing blog: %w", err)
	}
	return mapBlog(payload.Blog), nil
}

func (s *blogService) Suggest(ctx context.Context, term string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{}
	params.Set("search", term)
	params.Set("limit", strconv.Itoa(limit))

	data, err := s.client.Get(ctx, "/api/blogs/suggestions?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching suggestions: %w", err)
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing suggestions: %w", err)
	}
	return payload.Suggestions, nil
}

func (s *blogService) Create(ctx context.Context, draft domain.Blog) (domain.Blog, error) {
	if draft.Title == "" || draft.Content == "" {
		return domain.Blog{}, domain.ErrEmptyBlog
	}

	body := map[string]any{
		"title":    draft.Title,
		"content":  draft.Content,
		"category": draft.Category,
		"tags":     draft.Tags,
		"image":    draft.CoverURL,
	}
	data, err := s.client.Post(ctx, "/api/blogs", body)
	if err != nil {
		return domain.Blog{}, fmt.Errorf("creating blog: %w", err)
	}
	return parseBlogPayload(data)
}

func (s *blogService) Update(ctx context.Context, draft domain.Blog) (domain.Blog, error) {
	if draft.Title == "" || draft.Content == "" {
		return domain.Blog{}, domain.ErrEmptyBlog
	}

	body := map[string]any{
		"title":    draft.Title,
		"content":  draft.Content,
		"category": draft.Category,
		"tags":     draft.Tags,
		"image":    draft.CoverURL,
	}
	data, err := s.client.Put(ctx, "/api/blogs/"+url.PathEscape(draft.ID), body)
	if err != nil {
		return domain.Blog{}, fmt.Errorf("updating blog: %w", err)
	}
	return parseBlogPayload(data)
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Delete(ctx, "/api/blogs/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("deleting blog: %w", err)
	}
	return nil
}

func parseBlogPayload(data []byte) (domain.Blog, error) {
	var payload struct {
		Blog apiBlog `json:"blog"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Blog{}, fmt.Errorf("parsing blog response: %w", err)
	}
	return mapBlog(payload.Blog), nil
}

func mapBlog(b apiBlog) domain.Blog {
	createdAt, _ := time.Parse(time.RFC3339, b.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, b.UpdatedAt)

	return domain.Blog{
		ID:        b.ID,
		Slug:      b.Slug,
		Title:     html.UnescapeString(b.Title),
		Content:   stripHTML(b.Content),
		Author:    b.Author.Username,
		AuthorID:  b.Author.ID,
		Category:  b.Category.Name,
		Tags:      b.Tags,
		CoverURL:  b.Image,
		Likes:     b.Likes,
		ViewCount: b.Views,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// stripHTML removes HTML tags and decodes common entities.
// Good enough for terminal display; not a security boundary.
var (
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	lineBreakRe = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
)

func stripHTML(s string) string {
	// Replace paragraph ends and breaks with newlines
	s = lineBreakRe.ReplaceAllString(s, "\n")
	// Strip all remaining tags
	return html.UnescapeString(htmlTagRe.ReplaceAllString(s, ""))
}
