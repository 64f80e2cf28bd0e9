package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
)

// ObjectOptions controls how an object is written.
type ObjectOptions struct {
	ContentType  string
	CacheControl string
	// Upsert allows replacing an existing object at the same key.
	Upsert bool
}

// StorageInterface defines the object storage backends for uploaded images.
// Keys are bucket-relative paths such as "<userId>/<millis>-<uuid>.png".
type StorageInterface interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, opts ObjectOptions) error

	// PublicURL returns the URL clients use to fetch the object.
	PublicURL(bucket, key string) string

	Exists(ctx context.Context, bucket, key string) (bool, int64, error)

	Delete(ctx context.Context, bucket, key string) error
}
