package commands

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"

	"github.com/lucsky/cuid"
)

var ErrUploadImageCommandIsNotConstructed = errors.New(
	"UploadImageCommand must be created via NewUploadImageCommand constructor",
)

// UploadImageCommand carries one uploaded dish image.
type UploadImageCommand struct { //nolint:recvcheck //using for validation
	fileName    string
	contentType string
	size        int64
	body        io.Reader

	guard guard.ConstructorGuard
}

// NewUploadImageCommand rejects empty files, empty file names and names
// without an extension.
func NewUploadImageCommand(fileName, contentType string, size int64, body io.Reader) (UploadImageCommand, error) {
	fileName = strings.TrimSpace(fileName)

	if size <= 0 || body == nil {
		return UploadImageCommand{}, errs.NewValueIsRequiredError("file")
	}
	if fileName == "" {
		return UploadImageCommand{}, errs.NewValueIsRequiredError("file name")
	}
	if ext := filepath.Ext(fileName); ext == "" || ext == "." {
		return UploadImageCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"file name", errors.New(fileName+" has no extension"),
		)
	}

	return UploadImageCommand{
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		body:        body,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UploadImageCommand) Validate() error {
	return c.guard.Validate(ErrUploadImageCommandIsNotConstructed)
}

func (c UploadImageCommand) FileName() string { return c.fileName }

// Extension returns the lower-cased extension including the dot.
func (c UploadImageCommand) Extension() string {
	return strings.ToLower(filepath.Ext(c.fileName))
}

func (c UploadImageCommand) ContentType() string { return c.contentType }

func (c UploadImageCommand) Size() int64 { return c.size }

func (c UploadImageCommand) Body() io.Reader { return c.body }

// UploadImageCommandHandler stores the image under a fresh collision
// resistant name that keeps the original extension.
type UploadImageCommandHandler struct {
	storage ports.ImageStorage
	newKey  func() string
}

func NewUploadImageCommandHandler(storage ports.ImageStorage) UploadImageCommandHandler {
	return UploadImageCommandHandler{storage: storage, newKey: cuid.New}
}

// Handle returns the public URL of the stored image.
func (h *UploadImageCommandHandler) Handle(ctx context.Context, cmd UploadImageCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	key := "dishes/" + h.newKey() + cmd.Extension()
	return h.storage.Put(ctx, key, cmd.ContentType(), cmd.Body(), cmd.Size())
}
