package models

import "time"

// Like marks that a user liked a post. At most one like may exist per
// (post, user) pair; the unique index backs the rule enforced by the service.
type Like struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:36;not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_likes_post_user" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
