package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// state is the on-disk shape of the client's local state. It stands in for
// the browser's local storage: session token, bookmark list, theme
// preference, and the set of blogs already opened.
type state struct {
	Token     string   `json:"token,omitempty"`
	Bookmarks []string `json:"bookmarks,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	Viewed    []string `json:"viewed,omitempty"`
}

// FileStore implements app.Store on a single JSON file. Every mutation
// rewrites the file; concurrent writers are last-write-wins.
type FileStore struct {
	path   string
	state  state
	viewed map[string]bool
}

// Open loads the state file at path, or starts empty when it is missing.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.rebuildViewedIndex()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state from %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("parsing state %s: %w", path, err)
	}
	s.rebuildViewedIndex()
	return s, nil
}

func (s *FileStore) rebuildViewedIndex() {
	s.viewed = make(map[string]bool, len(s.state.Viewed))
	for _, id := range s.state.Viewed {
		s.viewed[id] = true
	}
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing state to %s: %w", s.path, err)
	}
	return nil
}

// Token returns the saved session token; ok is false when logged out.
func (s *FileStore) Token() (string, bool) {
	return s.state.Token, s.state.Token != ""
}

// SetToken saves the session token.
func (s *FileStore) SetToken(token string) error {
	s.state.Token = token
	return s.save()
}

// ClearToken logs the client out locally.
func (s *FileStore) ClearToken() error {
	s.state.Token = ""
	return s.save()
}

// Bookmarks returns the bookmarked blog IDs in insertion order.
func (s *FileStore) Bookmarks() []string {
	return append([]string{}, s.state.Bookmarks...)
}

// SetBookmarks replaces the bookmark list.
func (s *FileStore) SetBookmarks(ids []string) error {
	s.state.Bookmarks = append([]string{}, ids...)
	return s.save()
}

// Theme returns the saved theme name, empty when unset.
func (s *FileStore) Theme() string {
	return s.state.Theme
}

// SetTheme saves the theme preference.
func (s *FileStore) SetTheme(name string) error {
	s.state.Theme = name
	return s.save()
}

// IsViewed reports whether a blog was opened before.
func (s *FileStore) IsViewed(blogID string) bool {
	return s.viewed[blogID]
}

// MarkViewed records that a blog was opened. Already-viewed IDs are kept
// once.
func (s *FileStore) MarkViewed(blogID string) error {
	if s.viewed[blogID] {
		return nil
	}
	s.viewed[blogID] = true
	s.state.Viewed = append(s.state.Viewed, blogID)
	return s.save()
}
