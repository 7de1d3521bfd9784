// Package service holds the business rules for posts and their nested
// likes and comments. Every mutation follows the same shape: load the
// aggregate, apply the rule in memory, save the aggregate back.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devconnect/devconnect/models"
	"github.com/devconnect/devconnect/store"
)

// PostService implements create/list/get/delete for posts and the nested
// like/unlike/comment/uncomment mutations.
type PostService interface {
	CreatePost(ctx context.Context, authorID, text string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	LikePost(ctx context.Context, postID, userID string) ([]models.Like, error)
	UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID, authorID, text string) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, requesterID string) ([]models.Comment, error)
}

type postService struct {
	posts store.PostStore
	users store.UserStore
}

// NewPostService wires the service to its stores.
func NewPostService(posts store.PostStore, users store.UserStore) PostService {
	return &postService{posts: posts, users: users}
}

// CreatePost snapshots the author's name and avatar at call time and
// persists a new post with empty likes and comments.
func (s *postService) CreatePost(ctx context.Context, authorID, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	user, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := &models.Post{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		Text:         text,
		Likes:        []models.Like{},
		Comments:     []models.Comment{},
		CreatedAt:    time.Now(),
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns every post, most recent first. No pagination.
func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its nested collections. Only the author
// may delete a post.
func (s *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return ErrNotPostOwner
	}
	return s.posts.Delete(ctx, post)
}

// LikePost prepends a like for userID. Liking twice is a conflict, not a
// no-op.
func (s *postService) LikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.HasLikeFrom(userID) {
		return nil, ErrAlreadyLiked
	}

	like := models.Like{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	post.Likes = append([]models.Like{like}, post.Likes...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// UnlikePost removes the caller's like; the remaining likes keep their
// relative order.
func (s *postService) UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.HasLikeFrom(userID) {
		return nil, ErrNotLiked
	}

	for i := range post.Likes {
		if post.Likes[i].UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			break
		}
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment snapshots the commenter's profile and prepends the comment.
func (s *postService) AddComment(ctx context.Context, postID, authorID, text string) ([]models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		ID:           uuid.NewString(),
		PostID:       post.ID,
		UserID:       user.ID,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		Text:         text,
		CreatedAt:    time.Now(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment deletes a comment. Only the comment's author may remove it,
// even on a post they do not own.
func (s *postService) RemoveComment(ctx context.Context, postID, commentID, requesterID string) ([]models.Comment, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment := post.CommentByID(commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != requesterID {
		return nil, ErrNotCommentOwner
	}

	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			break
		}
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
