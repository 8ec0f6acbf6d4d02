// Package client talks to a running blog post API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
)

// ErrNotFound matches (via errors.Is) any APIError with status 404.
var ErrNotFound = errors.New("not found")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type options struct {
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*options)

func WithHTTPClient(value *http.Client) Option {
	return func(o *options) {
		o.httpClient = value
	}
}

func WithTimeout(value time.Duration) Option {
	return func(o *options) {
		o.timeout = value
	}
}

// Client is a blog post API client. baseURL includes the mount path,
// e.g. http://localhost:8080/blog-post.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	o := options{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: o.httpClient,
	}, nil
}

func (c *Client) List(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	if err := c.do(ctx, http.MethodGet, "", nil, http.StatusOK, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Get(ctx context.Context, id string) (model.BlogPost, error) {
	var post model.BlogPost
	err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, http.StatusOK, &post)
	return post, err
}

func (c *Client) Create(ctx context.Context, arg model.CreatePostParams) (model.BlogPost, error) {
	body := map[string]string{
		"title":   arg.Title,
		"content": arg.Content,
		"author":  arg.Author,
	}
	if arg.PublishDate != "" {
		body["publishDate"] = arg.PublishDate
	}

	var post model.BlogPost
	err := c.do(ctx, http.MethodPost, "", body, http.StatusCreated, &post)
	return post, err
}

func (c *Client) Update(ctx context.Context, post model.BlogPost) error {
	return c.do(ctx, http.MethodPut, "/"+url.PathEscape(post.ID), post, http.StatusNoContent, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, wantStatus int, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the message from a JSON error body, falling back to
// the raw text the API uses for validation failures.
func errorMessage(data []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(data))
}
