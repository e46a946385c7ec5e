package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rpupo63/personal-blog-backend/services"
)

const feedDocument = `[
	{"title": "Life of Cactus", "subtitle": "So spiky", "body": "<p>Cacti.</p>", "img_url": "https://example.com/cactus.jpg"},
	{"title": "Top 15 Things to do When You are Bored", "subtitle": "Are you bored?", "body": "<p>Ideas.</p>", "img_url": "https://example.com/bored.jpg"},
	{"title": "", "subtitle": "untitled entries are skipped", "body": "", "img_url": ""}
]`

func TestImportFeed(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	ctx := context.Background()
	admin := registerTestUser(t, db, "Angela", "angela@example.com")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedDocument))
	}))
	defer srv.Close()

	imported, err := services.ImportFeed(ctx, srv.URL, db)
	c.Assert(err, qt.IsNil)
	c.Assert(imported, qt.Equals, 2)

	// Re-importing the same document inserts nothing: titles dedupe.
	imported, err = services.ImportFeed(ctx, srv.URL, db)
	c.Assert(err, qt.IsNil)
	c.Assert(imported, qt.Equals, 0)

	posts, err := db.BlogPostRepo().FindAll(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(posts, qt.HasLen, 2)
	c.Assert(posts[0].Title, qt.Equals, "Life of Cactus")
	for _, post := range posts {
		c.Assert(post.AuthorID, qt.Equals, admin.UserID)
	}
}

func TestImportFeedRequiresAdministrator(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedDocument))
	}))
	defer srv.Close()

	// With no registered users there is no administrator to own the posts,
	// so nothing may be inserted.
	imported, err := services.ImportFeed(ctx, srv.URL, db)
	c.Assert(err, qt.ErrorMatches, "no administrator registered yet")
	c.Assert(imported, qt.Equals, 0)

	posts, err := db.BlogPostRepo().FindAll(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(posts, qt.HasLen, 0)
}

func TestImportFeedBadStatus(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	registerTestUser(t, db, "Angela", "angela@example.com")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := services.ImportFeed(context.Background(), srv.URL, db)
	c.Assert(err, qt.IsNotNil)
}
