package store

import (
	"testing"

	"newsportal/models"
)

func TestAddCommentNormalizesLikeState(t *testing.T) {
	app := newTestApp(t)

	// Callers are not trusted to zero the like state.
	app.AddComment(models.Comment{ID: "c1", PostID: "p1", Content: "hi", Likes: 99, LikedBy: []string{"ghost"}})

	for _, c := range app.Comments() {
		if c.ID != "c1" {
			continue
		}
		if c.Likes != 0 || len(c.LikedBy) != 0 {
			t.Errorf("Expected likes=0 likedBy=[], got likes=%d likedBy=%v", c.Likes, c.LikedBy)
		}
		return
	}
	t.Fatal("Comment c1 missing")
}

func TestToggleLikeRoundTrip(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	app.AddComment(models.Comment{ID: "c1", PostID: "p1", Content: "hi"})

	app.ToggleLikeComment("c1")
	c := findComment(t, app, "c1")
	if c.Likes != 1 || len(c.LikedBy) != 1 {
		t.Fatalf("After first toggle: likes=%d likedBy=%v", c.Likes, c.LikedBy)
	}

	app.ToggleLikeComment("c1")
	c = findComment(t, app, "c1")
	if c.Likes != 0 || len(c.LikedBy) != 0 {
		t.Errorf("Toggle twice must round-trip: likes=%d likedBy=%v", c.Likes, c.LikedBy)
	}
}

func TestToggleLikeWithoutSession(t *testing.T) {
	app := newTestApp(t)
	app.AddComment(models.Comment{ID: "c1", PostID: "p1", Content: "hi"})

	app.ToggleLikeComment("c1")

	c := findComment(t, app, "c1")
	if c.Likes != 0 || len(c.LikedBy) != 0 {
		t.Error("Toggle without a session must be a no-op")
	}
}

func TestToggleLikeKeepsCounterAndSetInStep(t *testing.T) {
	app := newTestApp(t)
	app.AddComment(models.Comment{ID: "c1", PostID: "p1", Content: "hi"})

	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	app.ToggleLikeComment("c1")
	app.Logout()

	app.Register(models.User{Name: "B", Email: "b@x.com"}, "p")
	app.ToggleLikeComment("c1")

	c := findComment(t, app, "c1")
	if c.Likes != len(c.LikedBy) {
		t.Errorf("Invariant broken: likes=%d len(likedBy)=%d", c.Likes, len(c.LikedBy))
	}
	if c.Likes != 2 {
		t.Errorf("Expected two likes from two users, got %d", c.Likes)
	}
}

func TestAddContactMessagePrepends(t *testing.T) {
	app := newTestApp(t)

	app.AddContactMessage(models.ContactMessage{ID: "m1", Name: "A", Content: "first"})
	app.AddContactMessage(models.ContactMessage{ID: "m2", Name: "B", Content: "second"})

	msgs := app.ContactMessages()
	if msgs[0].ID != "m2" {
		t.Errorf("Expected newest message first, got %s", msgs[0].ID)
	}
}

func findComment(t *testing.T, app *App, id string) models.Comment {
	t.Helper()
	for _, c := range app.Comments() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("Comment %s missing", id)
	return models.Comment{}
}
