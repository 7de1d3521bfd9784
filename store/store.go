// Package store is the persistence boundary. A post is treated as one
// addressable record: FindByID loads the whole aggregate, Save rewrites it
// in a single transaction, Delete removes it together with its nested
// likes and comments.
package store

import (
	"context"
	"errors"

	"github.com/devconnect/devconnect/models"
)

// ErrNotFound is returned when no record matches the given identifier.
// Malformed identifiers are indistinguishable from unknown ones.
var ErrNotFound = errors.New("record not found")

// PostStore persists post aggregates.
type PostStore interface {
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, post *models.Post) error
}

// UserStore resolves user profiles, used to snapshot author name/avatar
// at post- and comment-creation time.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}
