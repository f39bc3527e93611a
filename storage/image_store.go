// Package storage saves uploaded complaint images and returns a URL for them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"laptop-service-center/config"
)

// DefaultMaxBytes is the upload limit used when none is configured
const DefaultMaxBytes int64 = 5 * 1024 * 1024

// ErrInvalidImage is returned for uploads that are empty, too large or not an image
var ErrInvalidImage = errors.New("invalid image")

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageStore persists an uploaded image and returns the URL it is served from
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// ValidateImage checks the size and extension of an upload
func ValidateImage(file *multipart.FileHeader, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if file.Size <= 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidImage)
	}
	if file.Size > maxBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidImage, maxBytes)
	}
	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))]; !ok {
		return fmt.Errorf("%w: only jpg, jpeg, png and gif files are allowed", ErrInvalidImage)
	}
	return nil
}

// objectName returns a collision free name that keeps the original extension
func objectName(filename string) string {
	return "image-" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

func contentType(filename string) string {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// New returns the ImageStore selected by cfg.Backend
func New(ctx context.Context, cfg config.UploadConfig) (ImageStore, error) {
	switch cfg.Backend {
	case "local", "":
		return NewLocalStore(cfg.Dir, cfg.URLPrefix)
	case "cloudinary":
		return NewCloudinaryStore(cfg)
	case "s3":
		s, err := NewS3Store(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported UPLOAD_BACKEND %q", cfg.Backend)
	}
}
