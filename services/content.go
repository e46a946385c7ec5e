package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PostFields carries the mutable attributes of a post. Edits overwrite these
// and nothing else: id, publication date and author are fixed at creation.
type PostFields struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"imgUrl"`
}

// Content owns post and comment operations, including the administrator gate
// on every post mutation.
type Content struct {
	logger zerolog.Logger
	db     database.Database
}

func NewContent(db database.Database) Content {
	logger := log.With().Str("serviceName", "content").Logger()
	return Content{
		logger: logger,
		db:     db,
	}
}

// ListPosts returns every post in insertion order.
func (s Content) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.db.BlogPostRepo().FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find blog posts", "blog_posts", err)
	}
	return posts, nil
}

// GetPost returns a post with its comments.
func (s Content) GetPost(ctx context.Context, id uint) (*models.BlogPost, error) {
	post, err := s.db.BlogPostRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find blog post", "blog_post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}
	return post, nil
}

// CreatePost persists a new post authored by the administrator. The
// publication date is stamped to the current time.
func (s Content) CreatePost(ctx context.Context, fields PostFields, author auth.Identity) (*models.BlogPost, error) {
	if !author.IsAdministrator() {
		return nil, errs.Forbidden
	}

	if strings.TrimSpace(fields.Title) == "" {
		return nil, errs.BadRequest("title is required")
	}
	if strings.TrimSpace(fields.Body) == "" {
		return nil, errs.BadRequest("body is required")
	}

	existing, err := s.db.BlogPostRepo().FindByTitle(ctx, fields.Title)
	if err != nil {
		return nil, errs.NewDatabaseError("find blog post", "blog_post", err)
	}
	if existing != nil {
		return nil, errs.NewDuplicateTitleError(fields.Title)
	}

	post := &models.BlogPost{
		AuthorID: author.UserID,
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Date:     time.Now(),
		Body:     fields.Body,
		ImgURL:   fields.ImgURL,
	}
	if err := s.db.BlogPostRepo().Add(ctx, post); err != nil {
		// Unique index on title backstops the check above under
		// concurrent writers.
		dbErr := errs.NewDatabaseError("create blog post", "blog_post", err)
		if errors.Is(dbErr, errs.ErrAlreadyExists) {
			return nil, errs.NewDuplicateTitleError(fields.Title)
		}
		return nil, dbErr
	}

	s.logger.Info().Uint("postId", post.ID).Str("title", post.Title).Msg("created blog post")
	return post, nil
}

// EditPost overwrites a post's mutable fields in place. The id, publication
// date and author are untouched.
func (s Content) EditPost(ctx context.Context, id uint, fields PostFields, editor auth.Identity) (*models.BlogPost, error) {
	if !editor.IsAdministrator() {
		return nil, errs.Forbidden
	}

	post, err := s.db.BlogPostRepo().FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find blog post", "blog_post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}

	if strings.TrimSpace(fields.Title) == "" {
		return nil, errs.BadRequest("title is required")
	}
	if strings.TrimSpace(fields.Body) == "" {
		return nil, errs.BadRequest("body is required")
	}

	if fields.Title != post.Title {
		clash, err := s.db.BlogPostRepo().FindByTitle(ctx, fields.Title)
		if err != nil {
			return nil, errs.NewDatabaseError("find blog post", "blog_post", err)
		}
		if clash != nil {
			return nil, errs.NewDuplicateTitleError(fields.Title)
		}
	}

	post.Title = fields.Title
	post.Subtitle = fields.Subtitle
	post.Body = fields.Body
	post.ImgURL = fields.ImgURL

	if err := s.db.BlogPostRepo().Update(ctx, post); err != nil {
		return nil, errs.NewDatabaseError("update blog post", "blog_post", err)
	}

	s.logger.Info().Uint("postId", post.ID).Msg("edited blog post")
	return post, nil
}

// DeletePost removes a post and every comment under it in one transaction, so
// readers never observe an orphaned comment or a half-deleted post.
func (s Content) DeletePost(ctx context.Context, id uint, requester auth.Identity) error {
	if !requester.IsAdministrator() {
		return errs.Forbidden
	}

	post, err := s.db.BlogPostRepo().FindByID(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find blog post", "blog_post", err)
	}
	if post == nil {
		return errs.NewNotFound("blog post")
	}

	err = s.db.Transaction(ctx, func(tx database.Database) error {
		if err := tx.CommentRepo().DeleteByPostID(ctx, id); err != nil {
			return err
		}
		return tx.BlogPostRepo().Delete(ctx, id)
	})
	if err != nil {
		return errs.NewDatabaseError("delete blog post", "blog_post", err)
	}

	s.logger.Info().Uint("postId", id).Msg("deleted blog post and its comments")
	return nil
}

// AddComment attaches a comment to a post on behalf of any authenticated
// caller.
func (s Content) AddComment(ctx context.Context, postID uint, text string, author auth.Identity) (*models.Comment, error) {
	if !author.Authenticated {
		return nil, errs.Forbidden
	}

	if strings.TrimSpace(text) == "" {
		return nil, errs.NewEmptyTextError()
	}

	post, err := s.db.BlogPostRepo().FindByID(ctx, postID)
	if err != nil {
		return nil, errs.NewDatabaseError("find blog post", "blog_post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}

	comment := &models.Comment{
		AuthorID: author.UserID,
		PostID:   postID,
		Text:     text,
	}
	if err := s.db.CommentRepo().Add(ctx, comment); err != nil {
		return nil, errs.NewDatabaseError("create comment", "comment", err)
	}

	s.logger.Info().Uint("postId", postID).Uint("commentId", comment.ID).Msg("added comment")
	return comment, nil
}
