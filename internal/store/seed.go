package store

import (
	"context"
	"fmt"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
)

// SamplePosts are the posts a fresh server starts with.
var SamplePosts = []model.CreatePostParams{
	{Title: "sampleTitle1", Content: "sampleContent1", Author: "sampleAuthor1"},
	{Title: "sampleTitle2", Content: "sampleContent2", Author: "sampleAuthor2"},
	{Title: "sampleTitle3", Content: "sampleContent3", Author: "sampleAuthor3"},
}

// SeedSamplePosts creates every entry of SamplePosts in s.
func SeedSamplePosts(ctx context.Context, s PostStore) ([]model.BlogPost, error) {
	created := make([]model.BlogPost, 0, len(SamplePosts))
	for _, arg := range SamplePosts {
		post, err := s.Create(ctx, arg)
		if err != nil {
			return created, fmt.Errorf("failed to seed %q: %w", arg.Title, err)
		}
		created = append(created, post)
	}
	return created, nil
}
