package models

import (
	"time"
)

// BlogPost represents a published post. The publication date is stamped once
// at creation and never rewritten by edits.
type BlogPost struct {
	ID       uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	AuthorID uint      `json:"authorId" db:"author_id" gorm:"not null;index:idx_blog_posts_author_id"`
	Title    string    `json:"title" db:"title" gorm:"type:text;not null;uniqueIndex:idx_blog_posts_title"`
	Subtitle string    `json:"subtitle" db:"subtitle" gorm:"type:text;not null"`
	Date     time.Time `json:"date" db:"date" gorm:"type:timestamp;not null"`
	Body     string    `json:"body" db:"body" gorm:"type:text;not null"`
	ImgURL   string    `json:"imgUrl" db:"img_url" gorm:"type:text;not null"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID"`
}

// TableName keeps the table name aligned with the persisted schema.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// DisplayDate renders the publication date the way post pages show it,
// e.g. "August 29, 2026".
func (p BlogPost) DisplayDate() string {
	return p.Date.Format("January 2, 2006")
}
