package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/config"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/server"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
	"github.com/Goodidea-backend-camp/blog-post-api/pkg/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to an optional YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithFields(log.Fields{
			"err":  err,
			"path": *configPath,
		}).Fatal("Could not load configuration")
	}

	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.WithField("err", err).Fatal("Could not configure logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化 Store
	postStore := store.NewMemoryPostStore()
	if cfg.Seed.SamplePosts {
		posts, err := store.SeedSamplePosts(ctx, postStore)
		if err != nil {
			appLog.WithField("err", err).Fatal("Could not seed sample posts")
		}
		appLog.WithField("count", len(posts)).Info("Seeded sample posts")
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	srv := server.New(cfg.Server, postStore, appLog)

	appLog.WithFields(log.Fields{
		"addr":      cfg.Server.Addr(),
		"base_path": cfg.Server.BasePath,
	}).Info("Starting server")
	if err := srv.Run(ctx); err != nil {
		appLog.WithField("err", err).Fatal("Server failed")
	}
}
