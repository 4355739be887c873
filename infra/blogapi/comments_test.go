package blogapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

func TestCommentService_ListMapsNestedReplies(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/comments/blog/b1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"comments": [{
				"_id": "c1",
				"blog": "b1",
				"user": {"_id": "u1", "username": "alice"},
				"content": "top &amp; first",
				"likes": ["u2"],
				"isPinned": true,
				"createdAt": "2025-05-01T10:00:00Z",
				"replies": [{
					"_id": "c2",
					"blog": "b1",
					"user": {"_id": "u2", "username": "bob"},
					"content": "nested",
					"parentComment": "c1",
					"isEdited": true,
					"createdAt": "2025-05-01T11:00:00Z",
					"updatedAt": "2025-05-01T12:00:00Z",
					"replies": []
				}]
			}]
		}`))
	})

	svc := NewCommentService(newTestClient("tok", h))
	forest, err := svc.List(context.Background(), "b1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("expected one root comment, got %d", len(forest))
	}

	root := forest[0]
	if root.ID != "c1" || root.Author != "alice" || !root.Pinned {
		t.Fatalf("unexpected root mapping: %+v", root)
	}
	if root.Body != "top & first" {
		t.Fatalf("expected entity decode, got %q", root.Body)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected nested reply")
	}

	child := root.Children[0]
	if child.ParentID != "c1" || child.Author != "bob" {
		t.Fatalf("unexpected child mapping: %+v", child)
	}
	if child.EditedAt == nil {
		t.Fatalf("edited reply must carry an edited timestamp")
	}
}

func TestCommentService_CreateSendsParentWhenReplying(t *testing.T) {
	var gotBody string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte(`{"success":true,"comment":{"_id":"c9","blog":"b1","user":{"_id":"u1","username":"alice"},"content":"hi","parentComment":"c1","createdAt":"2025-05-01T10:00:00Z"}}`))
	})

	svc := NewCommentService(newTestClient("tok", h))
	got, err := svc.Create(context.Background(), "b1", "c1", "hi")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(gotBody, `"parentComment":"c1"`) {
		t.Fatalf("expected parentComment in body: %q", gotBody)
	}
	if got.ID != "c9" || got.ParentID != "c1" {
		t.Fatalf("unexpected mapped comment: %+v", got)
	}
}

func TestCommentService_CreateOmitsParentForTopLevel(t *testing.T) {
	var gotBody string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte(`{"success":true,"comment":{"_id":"c9","blog":"b1","user":{"_id":"u1","username":"alice"},"content":"hi","createdAt":"2025-05-01T10:00:00Z"}}`))
	})

	svc := NewCommentService(newTestClient("tok", h))
	if _, err := svc.Create(context.Background(), "b1", "", "hi"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if strings.Contains(gotBody, "parentComment") {
		t.Fatalf("top-level comment must not send parentComment: %q", gotBody)
	}
}

func TestCommentService_CreateValidatesBody(t *testing.T) {
	svc := NewCommentService(newTestClient("tok", nil))

	if _, err := svc.Create(context.Background(), "b1", "", "   "); !errors.Is(err, domain.ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}

	long := strings.Repeat("x", domain.MaxCommentLength+1)
	if _, err := svc.Create(context.Background(), "b1", "", long); !errors.Is(err, domain.ErrCommentTooLong) {
		t.Fatalf("expected ErrCommentTooLong, got %v", err)
	}
}

func TestCommentService_LikeReturnsNewLikesList(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/comments/c1/like" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"likes":["u1","u2"]}`))
	})

	svc := NewCommentService(newTestClient("tok", h))
	likes, err := svc.Like(context.Background(), "c1")
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if len(likes) != 2 || likes[0] != "u1" {
		t.Fatalf("unexpected likes: %v", likes)
	}
}
