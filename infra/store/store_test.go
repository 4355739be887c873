package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Fatalf("expected no token in fresh store")
	}
	if len(s.Bookmarks()) != 0 || s.Theme() != "" || s.IsViewed("x") {
		t.Fatalf("expected empty fresh store")
	}
}

func TestStore_RoundTripsThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := s.SetToken("tok-123"); err != nil {
		t.Fatalf("set token failed: %v", err)
	}
	if err := s.SetBookmarks([]string{"b1", "b2"}); err != nil {
		t.Fatalf("set bookmarks failed: %v", err)
	}
	if err := s.SetTheme("light"); err != nil {
		t.Fatalf("set theme failed: %v", err)
	}
	if err := s.MarkViewed("b1"); err != nil {
		t.Fatalf("mark viewed failed: %v", err)
	}
	// Marking twice must not duplicate the entry.
	if err := s.MarkViewed("b1"); err != nil {
		t.Fatalf("second mark viewed failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if tok, ok := reopened.Token(); !ok || tok != "tok-123" {
		t.Fatalf("token not persisted: %q ok=%v", tok, ok)
	}
	if got := reopened.Bookmarks(); !reflect.DeepEqual(got, []string{"b1", "b2"}) {
		t.Fatalf("bookmarks not persisted: %v", got)
	}
	if reopened.Theme() != "light" {
		t.Fatalf("theme not persisted: %q", reopened.Theme())
	}
	if !reopened.IsViewed("b1") || reopened.IsViewed("b2") {
		t.Fatalf("viewed set not persisted correctly")
	}
	if len(reopened.state.Viewed) != 1 {
		t.Fatalf("viewed list must be deduplicated: %v", reopened.state.Viewed)
	}
}

func TestStore_ClearToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, _ := Open(path)
	if err := s.SetToken("tok"); err != nil {
		t.Fatalf("set token failed: %v", err)
	}
	if err := s.ClearToken(); err != nil {
		t.Fatalf("clear token failed: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Fatalf("token must be cleared")
	}
}

func TestOpen_RejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}
