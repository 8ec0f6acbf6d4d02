package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Goodidea-backend-camp/blog-post-api/cmd/artisan/commands"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/client"
	"golang.org/x/term"
)

const defaultAPIURL = "http://localhost:8080/blog-post"

func run() error {
	if len(os.Args) < 2 {
		printHelp()
		return nil
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	// 初始化 API client
	c, err := client.New(apiURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// 路由命令
	command := os.Args[1]

	switch command {
	case "make:post":
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		return commands.MakePost(ctx, c, bufio.NewReader(os.Stdin), os.Stdout, interactive)
	case "list:posts":
		return commands.ListPosts(ctx, c, os.Stdout)
	case "delete:post":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: artisan delete:post <id>")
		}
		return commands.DeletePost(ctx, c, os.Args[2], os.Stdout)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Usage: go run cmd/artisan/main.go [command]")
	fmt.Println("Set API_URL to target a server other than " + defaultAPIURL)
	fmt.Println("Now Available commands:")
	fmt.Println("  make:post          Create a new blog post")
	fmt.Println("  list:posts         List all blog posts")
	fmt.Println("  delete:post <id>   Delete a blog post")
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
