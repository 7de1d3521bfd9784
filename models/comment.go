package models

import "time"

// Comment is a reply embedded in a post. Author name and avatar are a
// snapshot taken when the comment was written, not a live reference.
type Comment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	PostID       string    `gorm:"index;size:36;not null" json:"-"`
	UserID       string    `gorm:"size:36;not null" json:"user"`
	AuthorName   string    `gorm:"size:64" json:"name"`
	AuthorAvatar string    `gorm:"size:512" json:"avatar"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}
