package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-service-center/config"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestValidateImage(t *testing.T) {
	png := []byte("\x89PNG fake image data")

	assert.NoError(t, ValidateImage(fileHeader(t, "laptop.png", png), 1024))
	assert.NoError(t, ValidateImage(fileHeader(t, "laptop.JPG", png), 1024))
	assert.NoError(t, ValidateImage(fileHeader(t, "laptop.jpeg", png), 0))
	assert.NoError(t, ValidateImage(fileHeader(t, "laptop.gif", png), int64(len(png))))

	assert.ErrorIs(t, ValidateImage(fileHeader(t, "laptop.pdf", png), 1024), ErrInvalidImage)
	assert.ErrorIs(t, ValidateImage(fileHeader(t, "laptop", png), 1024), ErrInvalidImage)
	assert.ErrorIs(t, ValidateImage(fileHeader(t, "laptop.png", png), int64(len(png)-1)), ErrInvalidImage)
	assert.ErrorIs(t, ValidateImage(fileHeader(t, "empty.png", nil), 1024), ErrInvalidImage)
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(filepath.Join(dir, "uploads"), "/uploads/")
	require.NoError(t, err)

	content := []byte("fake gif bytes")
	url, err := s.Save(context.Background(), fileHeader(t, "Broken.GIF", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/image-"), url)
	assert.True(t, strings.HasSuffix(url, ".gif"), url)

	written, err := os.ReadFile(filepath.Join(s.Dir(), strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, written)

	other, err := s.Save(context.Background(), fileHeader(t, "Broken.GIF", content))
	require.NoError(t, err)
	assert.NotEqual(t, url, other)
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, config.UploadConfig{Backend: "local", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)

	_, err = New(ctx, config.UploadConfig{Backend: "cloudinary"})
	assert.EqualError(t, err, "cloudinary not configured")

	_, err = New(ctx, config.UploadConfig{Backend: "ftp"})
	assert.Error(t, err)
}

func TestCloudinaryStoreConfigured(t *testing.T) {
	s, err := NewCloudinaryStore(config.UploadConfig{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
		CloudinaryFolder:    "complaints",
	})
	require.NoError(t, err)
	assert.Equal(t, "complaints", s.folder)
}

func TestS3StoreObjectURL(t *testing.T) {
	s, err := NewS3Store(config.UploadConfig{
		S3Endpoint: "localhost:9000",
		S3Bucket:   "complaint-images",
		S3Region:   "us-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/complaint-images/image-1.png", s.objectURL("image-1.png"))

	s, err = NewS3Store(config.UploadConfig{
		S3Endpoint:      "s3.amazonaws.com",
		S3Bucket:        "complaint-images",
		S3UseSSL:        true,
		S3PublicBaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/complaint-images/k.jpg", s.objectURL("k.jpg"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", contentType("a.JPEG"))
	assert.Equal(t, "image/png", contentType("a.png"))
	assert.Empty(t, contentType("a.bmp"))
}
