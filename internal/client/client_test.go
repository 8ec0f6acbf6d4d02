package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/api"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()

	router := gin.New()
	api.NewHandler(store.NewMemoryPostStore(), log).RegisterRoutes(router.Group("/blog-post"))
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	c, err := New(ts.URL + "/blog-post/")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		wantError bool
	}{
		{name: "http", baseURL: "http://localhost:8080/blog-post"},
		{name: "https", baseURL: "https://blog.example.com/blog-post"},
		{name: "missing scheme", baseURL: "localhost:8080", wantError: true},
		{name: "unparseable", baseURL: "http://[::1", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.baseURL)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestClient_CRUD(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	posts, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	created, err := c.Create(ctx, model.CreatePostParams{Title: "mangu", Content: "platano verde", Author: "hatuey"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PublishDate)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	created.Title = "Mangu"
	require.NoError(t, c.Update(ctx, created))

	posts, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Mangu", posts[0].Title)

	require.NoError(t, c.Delete(ctx, created.ID))
	require.NoError(t, c.Delete(ctx, created.ID))

	_, err = c.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_APIErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Create(ctx, model.CreatePostParams{Content: "c", Author: "a"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing `title` in request body", apiErr.Message)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = c.Update(ctx, model.BlogPost{ID: "ghost", Title: "t", Content: "c", Author: "a", PublishDate: "d"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Post not found", apiErr.Message)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CancelledContext(t *testing.T) {
	c := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
