// Package server wires the blog post API into a gin engine and manages the
// HTTP listener's lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/api"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/config"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/middleware"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const readHeaderTimeout = 5 * time.Second

// ErrAlreadyStarted is returned by Start when the server is already listening.
var ErrAlreadyStarted = errors.New("server already started")

// Server serves the blog post API.
type Server struct {
	cfg    config.ServerConfig
	log    logrus.FieldLogger
	engine *gin.Engine

	mu       sync.Mutex
	httpSrv  *http.Server
	listener net.Listener
	// done is closed once Serve returns; serveErr is set before that.
	done     chan struct{}
	serveErr error
}

// New builds the gin engine: middleware, health check and blog post routes
// mounted under cfg.BasePath.
func New(cfg config.ServerConfig, postStore store.PostStore, log logrus.FieldLogger) *Server {
	engine := gin.New()
	engine.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.SecurityHeaders(),
		middleware.HostHeaderValidation(cfg.ExpectedHost, log),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		posts, err := postStore.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "Store is unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "posts": len(posts)})
	})

	api.NewHandler(postStore, log).RegisterRoutes(engine.Group(cfg.BasePath))

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
	}
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start binds the configured address and serves in the background.
// Port 0 picks a free port; use URL to find it.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpSrv != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	s.listener = ln
	s.httpSrv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	done := make(chan struct{})
	s.done = done
	s.serveErr = nil

	go func(srv *http.Server) {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.mu.Lock()
		s.serveErr = err
		s.mu.Unlock()
		close(done)
	}(s.httpSrv)

	s.log.WithField("addr", ln.Addr().String()).Info("Server listening")
	return nil
}

// URL returns the base URL of the running server, or "" when not started.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

// Close shuts the server down gracefully, waiting for in-flight requests
// until ctx is done. Closing a server that is not running is a no-op.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpSrv, s.done
	s.httpSrv, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := s.stopErr(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	s.log.Info("Server stopped")
	return nil
}

func (s *Server) stopErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serveErr
}

// Run starts the server and blocks until ctx is cancelled or serving fails,
// then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
		// Serve returned on its own or Close was called elsewhere.
		s.mu.Lock()
		if s.done == done {
			s.httpSrv, s.listener, s.done = nil, nil, nil
		}
		err := s.serveErr
		s.mu.Unlock()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.Close(shutdownCtx)
}
