package model

// BlogPost is the resource managed by the API.
type BlogPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
}

// CreatePostParams holds the fields needed to create a BlogPost.
// An empty PublishDate is filled in by the store.
type CreatePostParams struct {
	Title       string
	Content     string
	Author      string
	PublishDate string
}
