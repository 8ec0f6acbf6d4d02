package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Required fields are validated in declaration order, so the first reported
// field is the first missing one.

type createPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Author      string `json:"author" binding:"required"`
	PublishDate string `json:"publishDate"`
}

type updatePostRequest struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Author      string `json:"author" binding:"required"`
	PublishDate string `json:"publishDate" binding:"required"`
}

const invalidBodyMessage = "Invalid request body"

var registerOnce sync.Once

// registerJSONFieldNames makes validation errors report JSON field names
// instead of Go struct field names.
func registerJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingMessage converts a ShouldBindJSON error into the plain-text message
// returned to the client.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return missingFieldMessage(verrs[0].Field())
	}
	return invalidBodyMessage
}

func missingFieldMessage(field string) string {
	return fmt.Sprintf("Missing `%s` in request body", field)
}

func idMismatchMessage(pathID, bodyID string) string {
	return fmt.Sprintf("Request path id (%s) and request body id (%s) must match", pathID, bodyID)
}
