package services_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/services"
)

var helloFields = services.PostFields{
	Title:    "Hello",
	Subtitle: "First post",
	Body:     "<p>Welcome to the blog.</p>",
	ImgURL:   "https://example.com/cover.jpg",
}

func TestCreatePostRequiresAdministrator(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")
	reader := registerTestUser(t, db, "Ben", "ben@example.com")

	_, err := content.CreatePost(ctx, helloFields, auth.Anonymous)
	c.Assert(err, qt.ErrorIs, errs.ErrForbidden)

	_, err = content.CreatePost(ctx, helloFields, reader)
	c.Assert(err, qt.ErrorIs, errs.ErrForbidden)

	// No side effects from the refused attempts.
	posts, err := content.ListPosts(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(posts, qt.HasLen, 0)

	post, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)
	c.Assert(post.AuthorID, qt.Equals, admin.UserID)
	c.Assert(post.Date.IsZero(), qt.IsFalse)
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")

	_, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	_, err = content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.ErrorIs, errs.ErrDuplicateTitle)

	posts, err := content.ListPosts(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(posts, qt.HasLen, 1)
}

func TestListPostsInsertionOrder(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		fields := helloFields
		fields.Title = title
		_, err := content.CreatePost(ctx, fields, admin)
		c.Assert(err, qt.IsNil)
	}

	posts, err := content.ListPosts(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(posts, qt.HasLen, 3)
	for i, post := range posts {
		c.Assert(post.Title, qt.Equals, titles[i])
	}
}

func TestGetPostNotFound(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)

	_, err := content.GetPost(context.Background(), 42)
	c.Assert(err, qt.ErrorIs, errs.ErrNotFound)
}

func TestEditPostPreservesDateAndAuthor(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")
	reader := registerTestUser(t, db, "Ben", "ben@example.com")

	created, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	// Non-admin edits are refused with no side effect.
	_, err = content.EditPost(ctx, created.ID, helloFields, reader)
	c.Assert(err, qt.ErrorIs, errs.ErrForbidden)

	edited, err := content.EditPost(ctx, created.ID, services.PostFields{
		Title:    "Hello, again",
		Subtitle: "Revised",
		Body:     "<p>Updated body.</p>",
		ImgURL:   "https://example.com/new.jpg",
	}, admin)
	c.Assert(err, qt.IsNil)
	c.Assert(edited.Title, qt.Equals, "Hello, again")
	c.Assert(edited.ID, qt.Equals, created.ID)
	c.Assert(edited.AuthorID, qt.Equals, created.AuthorID)
	c.Assert(edited.Date.Equal(created.Date), qt.IsTrue)

	_, err = content.EditPost(ctx, 42, helloFields, admin)
	c.Assert(err, qt.ErrorIs, errs.ErrNotFound)
}

func TestEditPostRequiresTitleAndBody(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")

	created, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	// Edits hold to the same blank checks as creation.
	blankTitle := helloFields
	blankTitle.Title = "   "
	_, err = content.EditPost(ctx, created.ID, blankTitle, admin)
	c.Assert(err, qt.IsNotNil)

	blankBody := helloFields
	blankBody.Body = "   "
	_, err = content.EditPost(ctx, created.ID, blankBody, admin)
	c.Assert(err, qt.IsNotNil)

	// The post is untouched by the refused edits.
	post, err := content.GetPost(ctx, created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(post.Title, qt.Equals, helloFields.Title)
	c.Assert(post.Body, qt.Equals, helloFields.Body)
}

func TestEditPostRejectsTitleClash(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")

	first, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	other := helloFields
	other.Title = "Second"
	second, err := content.CreatePost(ctx, other, admin)
	c.Assert(err, qt.IsNil)

	clash := helloFields
	clash.Title = first.Title
	_, err = content.EditPost(ctx, second.ID, clash, admin)
	c.Assert(err, qt.ErrorIs, errs.ErrDuplicateTitle)
}

func TestDeletePostCascadesComments(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")
	reader := registerTestUser(t, db, "Ben", "ben@example.com")

	post, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	for i := 0; i < 3; i++ {
		_, err := content.AddComment(ctx, post.ID, "nice post", reader)
		c.Assert(err, qt.IsNil)
	}

	// Non-admin deletion is refused; everything stays.
	err = content.DeletePost(ctx, post.ID, reader)
	c.Assert(err, qt.ErrorIs, errs.ErrForbidden)

	err = content.DeletePost(ctx, post.ID, admin)
	c.Assert(err, qt.IsNil)

	// No orphaned comments and the post is gone.
	n, err := db.CommentRepo().CountByPostID(ctx, post.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(0))

	_, err = content.GetPost(ctx, post.ID)
	c.Assert(err, qt.ErrorIs, errs.ErrNotFound)

	err = content.DeletePost(ctx, post.ID, admin)
	c.Assert(err, qt.ErrorIs, errs.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	c := qt.New(t)
	db := newTestDatabase(t)
	content := services.NewContent(db)
	ctx := context.Background()

	admin := registerTestUser(t, db, "Ada", "ada@example.com")
	reader := registerTestUser(t, db, "Ben", "ben@example.com")

	post, err := content.CreatePost(ctx, helloFields, admin)
	c.Assert(err, qt.IsNil)

	// Anonymous callers may not comment; nothing is persisted.
	_, err = content.AddComment(ctx, post.ID, "drive-by", auth.Anonymous)
	c.Assert(err, qt.ErrorIs, errs.ErrForbidden)

	_, err = content.AddComment(ctx, post.ID, "   ", reader)
	c.Assert(err, qt.ErrorIs, errs.ErrEmptyText)

	_, err = content.AddComment(ctx, 42, "nice post", reader)
	c.Assert(err, qt.ErrorIs, errs.ErrNotFound)

	n, err := db.CommentRepo().CountByPostID(ctx, post.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(0))

	comment, err := content.AddComment(ctx, post.ID, "nice post", reader)
	c.Assert(err, qt.IsNil)
	c.Assert(comment.AuthorID, qt.Equals, reader.UserID)
	c.Assert(comment.PostID, qt.Equals, post.ID)

	got, err := content.GetPost(ctx, post.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Comments, qt.HasLen, 1)
	c.Assert(got.Comments[0].Text, qt.Equals, "nice post")
}
