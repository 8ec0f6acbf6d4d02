package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/client"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
)

const defaultAPIURL = "http://localhost:8080/blog-post"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := client.New(apiURL)
	if err != nil {
		return err
	}

	if _, err := c.List(ctx); err != nil {
		return fmt.Errorf("API not responding at %s: %w", apiURL, err)
	}

	fmt.Println("Seeding blog posts...")

	for _, arg := range store.SamplePosts {
		post, err := c.Create(ctx, arg)
		if err != nil {
			fmt.Printf("ERROR: %s: %v\n", arg.Title, err)
		} else {
			fmt.Printf("SUCCESS: %s (%s)\n", post.Title, post.ID)
		}
	}

	fmt.Println("Seed completed")
	return nil
}
