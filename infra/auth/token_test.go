package auth

import "testing"

type fakeStore struct {
	token string
}

func (f *fakeStore) Token() (string, bool)         { return f.token, f.token != "" }
func (f *fakeStore) SetToken(t string) error       { f.token = t; return nil }
func (f *fakeStore) ClearToken() error             { f.token = ""; return nil }
func (f *fakeStore) Bookmarks() []string           { return nil }
func (f *fakeStore) SetBookmarks([]string) error   { return nil }
func (f *fakeStore) Theme() string                 { return "" }
func (f *fakeStore) SetTheme(string) error         { return nil }
func (f *fakeStore) IsViewed(string) bool          { return false }
func (f *fakeStore) MarkViewed(string) error       { return nil }

func TestStoreTokenProvider_ReflectsStore(t *testing.T) {
	st := &fakeStore{}
	p := NewStoreTokenProvider(st)

	if got := p.AccessToken(); got != "" {
		t.Fatalf("expected empty token when logged out, got %q", got)
	}

	st.token = "tok-1"
	if got := p.AccessToken(); got != "tok-1" {
		t.Fatalf("expected stored token, got %q", got)
	}
}

func TestStatic_ReturnsFixedToken(t *testing.T) {
	if got := Static("abc").AccessToken(); got != "abc" {
		t.Fatalf("unexpected token %q", got)
	}
}
