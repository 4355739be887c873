package blogapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Dawaman43/blog-site-frontend/domain"
	"github.com/Dawaman43/blog-site-frontend/infra/auth"
)

type handlerRoundTripper struct {
	h http.Handler
}

func (rt handlerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := newResponseRecorder()
	rt.h.ServeHTTP(rec, req)
	return rec.response(req), nil
}

type responseRecorder struct {
	header http.Header
	body   strings.Builder
	code   int
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header         { return r.header }
func (r *responseRecorder) Write(p []byte) (int, error) { return r.body.Write(p) }
func (r *responseRecorder) WriteHeader(statusCode int)  { r.code = statusCode }

func (r *responseRecorder) response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode: r.code,
		Header:     r.header.Clone(),
		Body:       io.NopCloser(strings.NewReader(r.body.String())),
		Request:    req,
	}
}

func newTestClient(token string, h http.Handler) *Client {
	return &Client{
		baseURL: "https://example.test",
		tokens:  auth.Static(token),
		http:    &http.Client{Transport: handlerRoundTripper{h: h}},
	}
}

type errorRoundTripper struct {
	err error
}

func (rt errorRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, rt.err
}

func TestClient_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	c := newTestClient("tok", h)
	if _, err := c.Get(context.Background(), "/api/blogs"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_OmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var hadAuth bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	c := newTestClient("", h)
	if _, err := c.Get(context.Background(), "/api/blogs"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if hadAuth {
		t.Fatalf("logged-out request must not carry an Authorization header")
	}
}

func TestClient_SuccessFalseBecomesErrorWithServerMessage(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"slug already taken"}`))
	})

	c := newTestClient("tok", h)
	_, err := c.Post(context.Background(), "/api/blogs", map[string]any{"title": "x"})
	if err == nil || !strings.Contains(err.Error(), "slug already taken") {
		t.Fatalf("expected server message in error, got %v", err)
	}
}

func TestClient_NonSuccessStatusPrefersEnvelopeMessage(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"title is required"}`))
	})

	c := newTestClient("tok", h)
	_, err := c.Post(context.Background(), "/api/blogs", map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "title is required") {
		t.Fatalf("expected envelope message, got %v", err)
	}
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"no token"}`))
	})

	c := newTestClient("", h)
	_, err := c.Get(context.Background(), "/api/users/me")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_BodyWithoutSuccessFieldIsNotAFailure(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"comments":[]}`))
	})

	c := newTestClient("tok", h)
	if _, err := c.Get(context.Background(), "/api/comments/blog/1"); err != nil {
		t.Fatalf("plain payload must pass through: %v", err)
	}
}

func TestClient_DeadlineMapsToTimeoutSentinel(t *testing.T) {
	c := &Client{
		baseURL: "https://example.test",
		tokens:  auth.Static(""),
		http:    &http.Client{Transport: errorRoundTripper{err: context.DeadlineExceeded}},
	}

	_, err := c.Get(context.Background(), "/api/blogs/slug/x")
	if !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestClient_SendsJSONBody(t *testing.T) {
	var gotContentType, gotBody string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	c := newTestClient("tok", h)
	if _, err := c.Post(context.Background(), "/api/comments", map[string]any{"content": "hi"}); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if !strings.Contains(gotBody, `"content":"hi"`) {
		t.Fatalf("unexpected request body: %q", gotBody)
	}
}
