package api

import (
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler serves the blog post routes.
type Handler struct {
	store.PostStore
	log logrus.FieldLogger
}

func NewHandler(postStore store.PostStore, log logrus.FieldLogger) *Handler {
	registerJSONFieldNames()
	return &Handler{
		PostStore: postStore,
		log:       log,
	}
}

// RegisterRoutes mounts the blog post routes on router, relative to its base path.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("", h.ListPosts)
	router.GET("/", h.ListPosts)
	router.POST("", h.CreatePost)
	router.POST("/", h.CreatePost)
	router.GET("/:id", h.GetPost)
	router.PUT("/:id", h.UpdatePost)
	router.DELETE("/:id", h.DeletePost)
}
