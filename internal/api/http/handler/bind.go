package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notes-server/internal/api/http/response"
	"github.com/dtroode/notes-server/internal/apierrors"
	"github.com/dtroode/notes-server/internal/model"
)

// bind decodes a JSON or form body into obj. An empty body leaves obj zeroed
// so the service can report which fields are missing.
func bind(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBind(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return response.BindError(err)
	}
	return nil
}

// formFile returns the named upload, or nil when the request has none.
// The returned closer must be called once the upload has been consumed.
func formFile(c *gin.Context, field string) (*model.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, func() {}, apierrors.NewErrBadRequest("Request body too large")
		}
		// Missing file or a non-multipart request.
		return nil, func() {}, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, func() {}, apierrors.NewErrBadRequest("Invalid file upload")
	}

	return &model.Upload{
		Reader:      f,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, func() { _ = f.Close() }, nil
}
