package models

// Comment is a reader's remark under a post. Comments are never edited; they
// disappear only when their parent post is deleted.
type Comment struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	AuthorID uint   `json:"authorId" db:"author_id" gorm:"not null;index:idx_comments_author_id"`
	PostID   uint   `json:"postId" db:"post_id" gorm:"not null;index:idx_comments_post_id"`
	Text     string `json:"text" db:"text" gorm:"type:text;not null"`

	Author *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Post   *BlogPost `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID"`
}

// TableName keeps the table name aligned with the persisted schema.
func (Comment) TableName() string {
	return "comments"
}
