package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	fbstorage "firebase.google.com/go/v4/storage"

	"essentia-backend/internal/logger"
)

// FirebaseStorage writes objects to Firebase (Google Cloud Storage) buckets.
type FirebaseStorage struct {
	client *fbstorage.Client
}

func NewFirebaseStorage(client *fbstorage.Client) *FirebaseStorage {
	return &FirebaseStorage{client: client}
}

func (f *FirebaseStorage) object(bucket, key string) (*gcs.ObjectHandle, error) {
	b, err := f.client.Bucket(bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucket, err)
	}
	return b.Object(key), nil
}

func (f *FirebaseStorage) Put(ctx context.Context, bucket, key string, body io.Reader, opts ObjectOptions) error {
	logger.ExternalServiceCall("CloudStorage", "Put", "bucket", bucket, "key", key)

	obj, err := f.object(bucket, key)
	if err != nil {
		return err
	}
	if !opts.Upsert {
		obj = obj.If(gcs.Conditions{DoesNotExist: true})
	}

	w := obj.NewWriter(ctx)
	w.ContentType = opts.ContentType
	w.CacheControl = opts.CacheControl

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		logger.ExternalServiceResult("CloudStorage", "Put", err, "key", key)
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		logger.ExternalServiceResult("CloudStorage", "Put", err, "key", key)
		return fmt.Errorf("failed to finalize object: %w", err)
	}

	logger.ExternalServiceResult("CloudStorage", "Put", nil, "key", key)
	return nil
}

func (f *FirebaseStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, escapeKey(key))
}

func (f *FirebaseStorage) Exists(ctx context.Context, bucket, key string) (bool, int64, error) {
	obj, err := f.object(bucket, key)
	if err != nil {
		return false, 0, err
	}
	attrs, err := obj.Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (f *FirebaseStorage) Delete(ctx context.Context, bucket, key string) error {
	obj, err := f.object(bucket, key)
	if err != nil {
		return err
	}
	if err := obj.Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
