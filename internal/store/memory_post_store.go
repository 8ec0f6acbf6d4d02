package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
	"github.com/google/uuid"
)

// MemoryPostStore is an in-memory PostStore keeping posts in insertion order.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts []model.BlogPost
	now   func() time.Time
	newID func() string
}

// MemoryPostStoreOption is a function that configures a MemoryPostStore.
type MemoryPostStoreOption func(*MemoryPostStore)

// WithClock sets the clock used to default publishDate on create.
func WithClock(now func() time.Time) MemoryPostStoreOption {
	return func(s *MemoryPostStore) {
		s.now = now
	}
}

// WithIDGenerator overrides the uuid-based id generator.
func WithIDGenerator(newID func() string) MemoryPostStoreOption {
	return func(s *MemoryPostStore) {
		s.newID = newID
	}
}

// NewMemoryPostStore creates an empty MemoryPostStore.
func NewMemoryPostStore(opts ...MemoryPostStoreOption) *MemoryPostStore {
	s := &MemoryPostStore{
		posts: []model.BlogPost{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ PostStore = (*MemoryPostStore)(nil)

// Create appends a new post with a freshly generated id.
func (s *MemoryPostStore) Create(ctx context.Context, arg model.CreatePostParams) (model.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return model.BlogPost{}, err
	}

	publishDate := arg.PublishDate
	if publishDate == "" {
		publishDate = s.now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if s.indexOf(id) >= 0 {
		return model.BlogPost{}, fmt.Errorf("duplicate post id %q", id)
	}

	post := model.BlogPost{
		ID:          id,
		Title:       arg.Title,
		Content:     arg.Content,
		Author:      arg.Author,
		PublishDate: publishDate,
	}
	s.posts = append(s.posts, post)
	return post, nil
}

// List returns a copy of all posts.
func (s *MemoryPostStore) List(ctx context.Context) ([]model.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.BlogPost, len(s.posts))
	copy(posts, s.posts)
	return posts, nil
}

// Get returns the post with the given id.
func (s *MemoryPostStore) Get(ctx context.Context, id string) (model.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return model.BlogPost{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.BlogPost{}, fmt.Errorf("%q: %w", id, ErrPostNotFound)
	}
	return s.posts[i], nil
}

// Update replaces the mutable fields of an existing post in place.
func (s *MemoryPostStore) Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return model.BlogPost{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(post.ID)
	if i < 0 {
		return model.BlogPost{}, fmt.Errorf("%q: %w", post.ID, ErrPostNotFound)
	}
	s.posts[i].Title = post.Title
	s.posts[i].Content = post.Content
	s.posts[i].Author = post.Author
	s.posts[i].PublishDate = post.PublishDate
	return s.posts[i], nil
}

// Delete removes the post with the given id, if present.
func (s *MemoryPostStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
	}
	return nil
}

// Len returns the number of stored posts.
func (s *MemoryPostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// indexOf must be called with s.mu held.
func (s *MemoryPostStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}
