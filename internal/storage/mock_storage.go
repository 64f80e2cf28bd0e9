package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"essentia-backend/internal/logger"
)

// MockStorageService implements object storage on the local filesystem.
// Objects live at <uploadsDir>/<bucket>/<key> and are served by the HTTP
// server under /uploads/.
type MockStorageService struct {
	baseURL    string // Server URL (e.g., "http://localhost:8080")
	uploadsDir string
}

// NewMockStorageService creates a new mock storage service
func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &MockStorageService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		uploadsDir: uploadsDir,
	}, nil
}

func (m *MockStorageService) Put(ctx context.Context, bucket, key string, body io.Reader, opts ObjectOptions) error {
	fullPath, err := m.localPath(bucket, key)
	if err != nil {
		return err
	}

	if !opts.Upsert {
		if _, err := os.Stat(fullPath); err == nil {
			return ErrObjectExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	n, err := io.Copy(file, body)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Debug("Stored object on local filesystem", "bucket", bucket, "key", key, "bytes", n)
	return nil
}

func (m *MockStorageService) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", m.baseURL, url.PathEscape(bucket), escapeKey(key))
}

// Exists checks if an object exists and returns its size
func (m *MockStorageService) Exists(ctx context.Context, bucket, key string) (bool, int64, error) {
	fullPath, err := m.localPath(bucket, key)
	if err != nil {
		return false, 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockStorageService) Delete(ctx context.Context, bucket, key string) error {
	fullPath, err := m.localPath(bucket, key)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Open returns the object body and its content type for the upload handler.
func (m *MockStorageService) Open(bucket, key string) (io.ReadCloser, string, error) {
	fullPath, err := m.localPath(bucket, key)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return file, contentType, nil
}

// localPath resolves bucket/key inside uploadsDir, rejecting traversal.
func (m *MockStorageService) localPath(bucket, key string) (string, error) {
	clean := path.Clean("/" + bucket + "/" + key)
	if bucket == "" || key == "" || strings.Contains(bucket, "/") || !strings.HasPrefix(clean, "/"+bucket+"/") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(m.uploadsDir, filepath.FromSlash(clean)), nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
