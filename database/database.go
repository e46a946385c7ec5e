package database

import (
	"context"

	"gorm.io/gorm"
)

type Database struct {
	userRepo     *UserRepo
	blogPostRepo *BlogPostRepo
	commentRepo  *CommentRepo

	db *gorm.DB
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:     NewUserRepo(db),
		blogPostRepo: NewBlogPostRepo(db),
		commentRepo:  NewCommentRepo(db),
		db:           db,
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

// Transaction runs fn inside a single database transaction. Repositories built
// from the transactional handle see uncommitted work; nothing is visible to
// other callers until fn returns nil.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
