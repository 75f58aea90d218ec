// Package store persists website comments keyed by normalized domain.
package store

import (
	"context"

	"github.com/verilens/verilens/internal/model"
)

// Store defines the persistence interface for website comments. Writes are
// atomic per comment: either the full row commits or nothing does.
type Store interface {
	// CreateComment inserts c (domain, commenter, body, rating already
	// validated and normalized) and returns the stored row with its
	// assigned id and creation time.
	CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error)

	// ListComments returns all comments for a normalized domain, newest
	// first.
	ListComments(ctx context.Context, domain string) ([]model.Comment, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
