package service

import "errors"

// Sentinel errors returned by PostService. Controllers translate these into
// HTTP responses; anything else is treated as an internal failure.
var (
	ErrTextRequired    = errors.New("text is required")
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment does not exist")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not yet been liked")
	ErrNotPostOwner    = errors.New("you can only delete your own posts")
	ErrNotCommentOwner = errors.New("you can only delete your own comments")
)
