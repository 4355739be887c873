package feed

import (
	"context"
	"time"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
)

type stubBlogs struct{}

func (stubBlogs) List(context.Context, app.ListQuery) ([]domain.Blog, error) { return nil, nil }
func (stubBlogs) GetBySlug(context.Context, string) (domain.Blog, error)     { return domain.Blog{}, nil }
func (stubBlogs) Suggest(context.Context, string, int) ([]string, error)     { return nil, nil }
func (stubBlogs) Create(context.Context, domain.Blog) (domain.Blog, error)   { return domain.Blog{}, nil }
func (stubBlogs) Update(context.Context, domain.Blog) (domain.Blog, error)   { return domain.Blog{}, nil }
func (stubBlogs) Delete(context.Context, string) error                       { return nil }

type stubComments struct{}

func (stubComments) List(context.Context, string) ([]domain.Comment, error) { return nil, nil }
func (stubComments) Create(context.Context, string, string, string) (domain.Comment, error) {
	return domain.Comment{}, nil
}
func (stubComments) Edit(context.Context, string, string) (domain.Comment, error) {
	return domain.Comment{}, nil
}
func (stubComments) Delete(context.Context, string) error          { return nil }
func (stubComments) Like(context.Context, string) ([]string, error) { return nil, nil }

type stubCategories struct{}

func (stubCategories) List(context.Context) ([]domain.Category, error) { return nil, nil }

type stubAccount struct{}

func (stubAccount) Login(context.Context, string, string) (app.Session, error) {
	return app.Session{}, nil
}
func (stubAccount) Register(context.Context, string, string, string) (app.Session, error) {
	return app.Session{}, nil
}
func (stubAccount) CurrentUser(context.Context) (domain.User, error) { return domain.User{}, nil }
func (stubAccount) UpdateProfile(context.Context, string, string) error { return nil }
func (stubAccount) Subscribe(context.Context, string) error             { return nil }

// memStore is an in-memory app.Store for tests.
type memStore struct {
	token     string
	bookmarks []string
	theme     string
	viewed    map[string]bool
}

func newMemStore() *memStore {
	return &memStore{viewed: make(map[string]bool)}
}

func (s *memStore) Token() (string, bool)        { return s.token, s.token != "" }
func (s *memStore) SetToken(token string) error  { s.token = token; return nil }
func (s *memStore) ClearToken() error            { s.token = ""; return nil }
func (s *memStore) Bookmarks() []string          { return s.bookmarks }
func (s *memStore) SetBookmarks(ids []string) error {
	s.bookmarks = ids
	return nil
}
func (s *memStore) Theme() string               { return s.theme }
func (s *memStore) SetTheme(name string) error  { s.theme = name; return nil }
func (s *memStore) IsViewed(blogID string) bool { return s.viewed[blogID] }
func (s *memStore) MarkViewed(blogID string) error {
	s.viewed[blogID] = true
	return nil
}

func newTestModel() Model {
	return New(Deps{
		Blogs:      stubBlogs{},
		Comments:   stubComments{},
		Categories: stubCategories{},
		Account:    stubAccount{},
		Store:      newMemStore(),
	})
}

func makeBlog(id, authorID string) domain.Blog {
	return domain.Blog{
		ID:        id,
		Slug:      "blog-" + id,
		Title:     "Blog " + id,
		Content:   "content " + id,
		Author:    "author" + id,
		AuthorID:  authorID,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func makeComment(id, author string, children ...domain.Comment) domain.Comment {
	return domain.Comment{
		ID:        id,
		AuthorID:  "acct-" + id,
		Author:    author,
		Body:      "body " + id,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Children:  children,
	}
}
