package blogapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/Dawaman43/blog-site-frontend/app"
	"github.com/Dawaman43/blog-site-frontend/domain"
)

func TestBlogService_ListRequestShapeAndMapping(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"success": true,
			"blogs": [{
				"_id": "b1",
				"slug": "hello-world",
				"title": "Hello &amp; World",
				"content": "<p>first</p><p>second</p>",
				"author": {"_id": "u1", "username": "alice"},
				"category": {"_id": "cat1", "slug": "tech", "name": "Tech"},
				"tags": ["go"],
				"views": 7,
				"createdAt": "2025-05-01T10:00:00Z"
			}]
		}`))
	})

	svc := NewBlogService(newTestClient("tok", h))
	blogs, err := svc.List(context.Background(), app.ListQuery{
		Search:   "hello",
		Category: "tech",
		Page:     2,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if gotPath != "/api/blogs" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotQuery.Get("search") != "hello" || gotQuery.Get("category") != "tech" ||
		gotQuery.Get("page") != "2" || gotQuery.Get("limit") != "10" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}

	if len(blogs) != 1 {
		t.Fatalf("expected one blog")
	}
	b := blogs[0]
	if b.ID != "b1" || b.Slug != "hello-world" || b.Author != "alice" || b.Category != "Tech" {
		t.Fatalf("unexpected mapping: %+v", b)
	}
	if b.Title != "Hello & World" {
		t.Fatalf("expected entity decode in title: %q", b.Title)
	}
	if !strings.Contains(b.Content, "first\n") || strings.Contains(b.Content, "<p>") {
		t.Fatalf("expected HTML stripped with line breaks: %q", b.Content)
	}
}

func TestBlogService_GetBySlugUsesSlugRoute(t *testing.T) {
	var gotPath string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Context().Err() != nil {
			t.Fatalf("context already done")
		}
		if _, ok := r.Context().Deadline(); !ok {
			t.Fatalf("detail fetch must carry a deadline")
		}
		_, _ = w.Write([]byte(`{"success":true,"blog":{"_id":"b1","slug":"my-post","title":"t","content":"c","author":{"_id":"u1","username":"alice"},"createdAt":"2025-05-01T10:00:00Z"}}`))
	})

	svc := NewBlogService(newTestClient("tok", h))
	blog, err := svc.GetBySlug(context.Background(), "my-post")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotPath != "/api/blogs/slug/my-post" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if blog.Slug != "my-post" {
		t.Fatalf("unexpected blog: %+v", blog)
	}
}

func TestBlogService_SuggestParsesTitles(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") != "go" {
			t.Fatalf("unexpected query %v", r.URL.Query())
		}
		_, _ = w.Write([]byte(`{"success":true,"suggestions":["Go Basics","Go Advanced"]}`))
	})

	svc := NewBlogService(newTestClient("", h))
	got, err := svc.Suggest(context.Background(), "go", 5)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Go Basics" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}

func TestBlogService_CreateRejectsEmptyDraft(t *testing.T) {
	svc := NewBlogService(newTestClient("tok", nil))
	if _, err := svc.Create(context.Background(), domain.Blog{Title: "only title"}); !errors.Is(err, domain.ErrEmptyBlog) {
		t.Fatalf("expected ErrEmptyBlog, got %v", err)
	}
	if _, err := svc.Update(context.Background(), domain.Blog{Content: "only content"}); !errors.Is(err, domain.ErrEmptyBlog) {
		t.Fatalf("expected ErrEmptyBlog, got %v", err)
	}
}
