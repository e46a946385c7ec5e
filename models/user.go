package models

// User represents a registered account. The first user to register (id 1) is
// the blog's administrator.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null"`
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`

	Posts    []BlogPost `json:"posts,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment  `json:"comments,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName keeps the table name aligned with the persisted schema.
func (User) TableName() string {
	return "users"
}
