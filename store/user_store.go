package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/devconnect/devconnect/models"
)

type userStore struct {
	db *gorm.DB
}

// NewUserStore returns a UserStore backed by GORM.
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}
	return &user, nil
}
