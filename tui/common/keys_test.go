package common

import "testing"

func TestDefaultKeyMap_NoOverlappingBindings(t *testing.T) {
	km := DefaultKeyMap()
	bindings := map[string][]string{
		"quit":       km.Quit.Keys(),
		"refresh":    km.Refresh.Keys(),
		"search":     km.Search.Keys(),
		"categories": km.Categories.Keys(),
		"bookmarks":  km.Bookmarks.Keys(),
		"bookmark":   km.Bookmark.Keys(),
		"newEditor":  km.NewEditor.Keys(),
		"newInline":  km.NewInline.Keys(),
		"edit":       km.Edit.Keys(),
		"delete":     km.Delete.Keys(),
		"like":       km.Like.Keys(),
		"reply":      km.Reply.Keys(),
		"open":       km.Open.Keys(),
		"back":       km.Back.Keys(),
		"login":      km.Login.Keys(),
		"subscribe":  km.Subscribe.Keys(),
		"theme":      km.ThemeToggle.Keys(),
	}

	seen := map[string]string{}
	for name, keys := range bindings {
		for _, k := range keys {
			if prev, ok := seen[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, prev, name)
			}
			seen[k] = name
		}
	}
}
