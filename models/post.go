package models

import "time"

// Post is the aggregate root: likes and comments only ever live inside a
// post and are persisted together with it in a single store write.
type Post struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"index;size:36;not null" json:"user"`
	AuthorName   string    `gorm:"size:64" json:"name"`
	AuthorAvatar string    `gorm:"size:512" json:"avatar"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Likes        []Like    `json:"likes"`
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasLikeFrom reports whether userID already appears among the likes.
func (p *Post) HasLikeFrom(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given id, or nil.
func (p *Post) CommentByID(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
