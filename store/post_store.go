package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devconnect/devconnect/models"
)

type postStore struct {
	db *gorm.DB
}

// NewPostStore returns a PostStore backed by GORM.
func NewPostStore(db *gorm.DB) PostStore {
	return &postStore{db: db}
}

// preloadNested orders likes and comments newest-first so the aggregate
// comes back the way the service left it.
func preloadNested(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.created_at DESC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		})
}

func (s *postStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := preloadNested(s.db.WithContext(ctx)).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load post %s: %w", id, err)
	}
	return &post, nil
}

func (s *postStore) FindAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := preloadNested(s.db.WithContext(ctx)).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Save rewrites the aggregate: the post row plus a full replacement of its
// nested likes and comments, all inside one transaction so a failed write
// leaves the stored state untouched.
func (s *postStore) Save(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		for i := range post.Likes {
			post.Likes[i].PostID = post.ID
			if post.Likes[i].ID == "" {
				post.Likes[i].ID = uuid.NewString()
			}
		}
		if len(post.Likes) > 0 {
			if err := tx.Create(&post.Likes).Error; err != nil {
				return err
			}
		}
		for i := range post.Comments {
			post.Comments[i].PostID = post.ID
			if post.Comments[i].ID == "" {
				post.Comments[i].ID = uuid.NewString()
			}
		}
		if len(post.Comments) > 0 {
			if err := tx.Create(&post.Comments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save post %s: %w", post.ID, err)
	}
	return nil
}

func (s *postStore) Delete(ctx context.Context, post *models.Post) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		return fmt.Errorf("delete post %s: %w", post.ID, err)
	}
	return nil
}
