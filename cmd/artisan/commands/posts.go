package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
)

// PostCreator is the part of client.Client used by MakePost.
type PostCreator interface {
	Create(ctx context.Context, arg model.CreatePostParams) (model.BlogPost, error)
}

// PostLister is the part of client.Client used by ListPosts.
type PostLister interface {
	List(ctx context.Context) ([]model.BlogPost, error)
}

// PostDeleter is the part of client.Client used by DeletePost.
type PostDeleter interface {
	Delete(ctx context.Context, id string) error
}

// MakePost 互動式建立文章
// Prompts are only written when interactive is true, so input can be piped in.
func MakePost(ctx context.Context, c PostCreator, in *bufio.Reader, out io.Writer, interactive bool) error {
	prompt := func(label string) (string, error) {
		if interactive {
			fmt.Fprintf(out, "Enter %s: ", label)
		}
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("failed to read %s: %w", label, err)
		}
		value := strings.TrimSpace(line)
		if value == "" {
			return "", fmt.Errorf("%s cannot be empty", label)
		}
		return value, nil
	}

	var arg model.CreatePostParams
	var err error
	if arg.Title, err = prompt("title"); err != nil {
		return err
	}
	if arg.Content, err = prompt("content"); err != nil {
		return err
	}
	if arg.Author, err = prompt("author"); err != nil {
		return err
	}

	post, err := c.Create(ctx, arg)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	fmt.Fprintln(out, "\nPost created successfully!")
	fmt.Fprintf(out, "   ID: %s\n", post.ID)
	fmt.Fprintf(out, "   Title: %s\n", post.Title)
	fmt.Fprintf(out, "   Published: %s\n", post.PublishDate)
	return nil
}

// ListPosts prints every post as a table.
func ListPosts(ctx context.Context, c PostLister, out io.Writer) error {
	posts, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPUBLISHED")
	for _, p := range posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Author, p.PublishDate)
	}
	return w.Flush()
}

func DeletePost(ctx context.Context, c PostDeleter, id string, out io.Writer) error {
	if err := c.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	fmt.Fprintf(out, "Deleted post %s\n", id)
	return nil
}
