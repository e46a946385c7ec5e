package database

import (
	"context"
	"errors"

	"github.com/rpupo63/personal-blog-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts in insertion order (ascending id), with
// authors preloaded for display.
func (r *BlogPostRepo) FindAll(ctx context.Context) ([]*models.BlogPost, error) {
	var blogPosts []*models.BlogPost
	err := r.db.WithContext(ctx).Preload("Author").Order("id ASC").Find(&blogPosts).Error
	return blogPosts, err
}

// FindByID returns a blog post with its author and comments (comment authors
// preloaded), or nil when no such post exists.
func (r *BlogPostRepo) FindByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		Preload("Comments.Author").
		First(&blogPost, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// FindByTitle returns the post carrying the given title, or nil when the
// title is unused.
func (r *BlogPostRepo) FindByTitle(ctx context.Context, title string) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&blogPost).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(ctx context.Context, blogPost *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(blogPost).Error
}

// Update persists a post's mutable fields. Id, date and author never change
// after creation, so only the editable columns are written.
func (r *BlogPostRepo) Update(ctx context.Context, blogPost *models.BlogPost) error {
	return r.db.WithContext(ctx).
		Model(blogPost).
		Select("title", "subtitle", "body", "img_url").
		Updates(blogPost).Error
}

// Delete removes a blog post from the database by id. Dependent comments are
// the caller's responsibility; use Database.Transaction for the cascade.
func (r *BlogPostRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error
}
