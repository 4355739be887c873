package domain

import (
	"reflect"
	"testing"
	"time"
)

func node(id, author string, children ...Comment) Comment {
	return Comment{
		ID:       id,
		Author:   author,
		Body:     "body " + id,
		Likes:    []string{},
		Children: children,
	}
}

// threeLevelForest builds: root1 -> reply2 -> reply3, plus a sibling root4.
func threeLevelForest() []Comment {
	return []Comment{
		node("1", "alice", node("2", "bob", node("3", "carol"))),
		node("4", "dave"),
	}
}

func TestInsertReply_AppendsToMatchedParent(t *testing.T) {
	forest := []Comment{node("1", "alice")}

	got := InsertReply(forest, "1", node("2", "bob"))

	want := []Comment{node("1", "alice", node("2", "bob"))}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected forest: %#v", got)
	}
	if len(forest[0].Children) != 0 {
		t.Fatalf("input forest must not be mutated: %#v", forest)
	}
}

func TestInsertReply_EmptyParentAppendsTopLevel(t *testing.T) {
	forest := []Comment{node("1", "alice")}

	got := InsertReply(forest, "", node("2", "bob"))

	if len(got) != 2 || got[1].ID != "2" {
		t.Fatalf("expected top-level append, got %#v", got)
	}
	if len(forest) != 1 {
		t.Fatalf("input forest must not be mutated")
	}
}

func TestInsertReply_PreservesSiblingOrder(t *testing.T) {
	forest := []Comment{node("1", "alice", node("a", "x"), node("b", "y"))}

	got := InsertReply(forest, "1", node("c", "z"))

	ids := make([]string, 0, 3)
	for _, c := range got[0].Children {
		ids = append(ids, c.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("expected append at end preserving order, got %v", ids)
	}
}

func TestTreeOps_UnknownIDIsNoOp(t *testing.T) {
	forest := threeLevelForest()
	body := "changed"

	cases := []struct {
		name string
		got  []Comment
	}{
		{"insert", InsertReply(forest, "missing", node("n", "nobody"))},
		{"patch", PatchComment(forest, "missing", CommentPatch{Body: &body})},
		{"likes", SetCommentLikes(forest, "missing", []string{"u1"})},
		{"remove", RemoveComment(forest, "missing")},
	}
	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, threeLevelForest()) {
			t.Fatalf("%s on unknown id must leave forest unchanged: %#v", tc.name, tc.got)
		}
	}
}

func TestPatchComment_ChangesOnlyTargetFields(t *testing.T) {
	forest := threeLevelForest()
	body := "edited"
	editedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := PatchComment(forest, "2", CommentPatch{Body: &body, EditedAt: &editedAt})

	target := got[0].Children[0]
	if target.Body != "edited" || target.EditedAt == nil || !target.EditedAt.Equal(editedAt) {
		t.Fatalf("patch not applied: %#v", target)
	}
	if target.Author != "bob" || len(target.Likes) != 0 {
		t.Fatalf("unlisted fields must be untouched: %#v", target)
	}
	if !reflect.DeepEqual(got[0].Children[0].Children, forest[0].Children[0].Children) {
		t.Fatalf("descendants must be untouched")
	}
	if !reflect.DeepEqual(got[1], forest[1]) {
		t.Fatalf("siblings outside the rebuilt chain must be untouched")
	}
	if forest[0].Children[0].Body != "body 2" {
		t.Fatalf("input forest must not be mutated")
	}
}

func TestSetCommentLikes_EquivalentToPatch(t *testing.T) {
	forest := threeLevelForest()
	likes := []string{"u1", "u2"}

	viaSet := SetCommentLikes(forest, "3", likes)
	viaPatch := PatchComment(forest, "3", CommentPatch{Likes: &likes})

	if !reflect.DeepEqual(viaSet, viaPatch) {
		t.Fatalf("SetCommentLikes must match PatchComment on likes only")
	}
	if got := viaSet[0].Children[0].Children[0].Likes; !reflect.DeepEqual(got, likes) {
		t.Fatalf("likes not replaced: %v", got)
	}
}

func TestInsertThenRemove_IsIdentityForFreshLeaf(t *testing.T) {
	forest := threeLevelForest()

	inserted := InsertReply(forest, "3", node("leaf", "erin"))
	got := RemoveComment(inserted, "leaf")

	if !reflect.DeepEqual(got, forest) {
		t.Fatalf("insert followed by remove must restore the forest: %#v", got)
	}
}

func TestRemoveComment_DropsEntireSubtree(t *testing.T) {
	forest := threeLevelForest()

	got := RemoveComment(forest, "2")

	if len(got[0].Children) != 0 {
		t.Fatalf("expected node 2 removed from node 1: %#v", got[0])
	}
	if _, ok := CommentAuthor(got, "3"); ok {
		t.Fatalf("descendant 3 must be removed with its parent")
	}
	if forest[0].Children[0].ID != "2" {
		t.Fatalf("input forest must not be mutated")
	}
}

func TestRemoveComment_TopLevel(t *testing.T) {
	forest := threeLevelForest()

	got := RemoveComment(forest, "1")

	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("expected only root 4 left: %#v", got)
	}
}

func TestCommentAuthor_FindsDeepNodeAndMissesAbsent(t *testing.T) {
	forest := threeLevelForest()

	name, ok := CommentAuthor(forest, "3")
	if !ok || name != "carol" {
		t.Fatalf("expected carol at depth 3, got %q ok=%v", name, ok)
	}

	if _, ok := CommentAuthor(forest, "gone"); ok {
		t.Fatalf("absent id must report ok=false")
	}
}

func TestTreeOps_FirstDepthFirstMatchWins(t *testing.T) {
	// Duplicate id "dup": once nested under root 1, once as a later root.
	// Depth-first, left-to-right order reaches the nested one first.
	forest := []Comment{
		node("1", "alice", node("dup", "nested")),
		node("dup", "toplevel"),
	}
	body := "changed"

	got := PatchComment(forest, "dup", CommentPatch{Body: &body})

	if got[0].Children[0].Body != "changed" {
		t.Fatalf("nested duplicate must be patched first")
	}
	if got[1].Body == "changed" {
		t.Fatalf("top-level duplicate must be untouched")
	}

	removed := RemoveComment(forest, "dup")
	if len(removed[0].Children) != 0 || removed[1].ID != "dup" {
		t.Fatalf("remove must drop the nested duplicate only: %#v", removed)
	}
}

func TestToggleLike_SetSemantics(t *testing.T) {
	likes := []string{"u1", "u2"}

	added := ToggleLike(likes, "u3")
	if !reflect.DeepEqual(added, []string{"u1", "u2", "u3"}) {
		t.Fatalf("expected append of new user: %v", added)
	}

	removedAgain := ToggleLike(added, "u3")
	if !reflect.DeepEqual(removedAgain, []string{"u1", "u2"}) {
		t.Fatalf("expected second toggle to remove: %v", removedAgain)
	}

	if !HasLike(added, "u3") || HasLike(likes, "u3") {
		t.Fatalf("HasLike mismatch")
	}
}
