package store

import (
	"context"
	"errors"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
)

// ErrPostNotFound is returned when no post matches the requested id.
var ErrPostNotFound = errors.New("post not found")

// PostStore defines the blog post store interface
type PostStore interface {
	Create(ctx context.Context, arg model.CreatePostParams) (model.BlogPost, error)
	// List returns every post in insertion order.
	List(ctx context.Context) ([]model.BlogPost, error)
	Get(ctx context.Context, id string) (model.BlogPost, error)
	// Update replaces title, content, author and publishDate of the post with
	// the same id. It returns ErrPostNotFound if there is no such post.
	Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	// Delete removes the post with the given id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
