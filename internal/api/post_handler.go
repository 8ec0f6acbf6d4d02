package api

import (
	"errors"
	"net/http"

	"github.com/Goodidea-backend-camp/blog-post-api/internal/model"
	"github.com/Goodidea-backend-camp/blog-post-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.PostStore.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list posts", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.PostStore.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			h.notFound(c, id)
			return
		}
		h.internalError(c, "get post", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, bindingMessage(err))
		return
	}

	post, err := h.PostStore.Create(c.Request.Context(), model.CreatePostParams{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		PublishDate: req.PublishDate,
	})
	if err != nil {
		h.internalError(c, "create post", err)
		return
	}

	h.log.WithField("id", post.ID).Info("Created blog post")
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, bindingMessage(err))
		return
	}

	if req.ID != id {
		h.badRequest(c, idMismatchMessage(id, req.ID))
		return
	}

	_, err := h.PostStore.Update(c.Request.Context(), model.BlogPost{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		PublishDate: req.PublishDate,
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			h.notFound(c, id)
			return
		}
		h.internalError(c, "update post", err)
		return
	}

	h.log.WithField("id", id).Info("Updated blog post")
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if err := h.PostStore.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "delete post", err)
		return
	}

	h.log.WithField("id", id).Info("Deleted blog post")
	c.Status(http.StatusNoContent)
}

// badRequest answers with a plain-text message, the format clients of this
// API match on.
func (h *Handler) badRequest(c *gin.Context, message string) {
	h.log.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Warn(message)
	c.String(http.StatusBadRequest, "%s", message)
}

func (h *Handler) notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "Post not found",
	})
	h.log.WithField("id", id).Debug("Post not found")
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.log.WithFields(logrus.Fields{
		"op":  op,
		"err": err,
	}).Error("Store operation failed")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
