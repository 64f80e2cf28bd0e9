package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
	"essentia-backend/internal/repository"
	"essentia-backend/internal/storage"
)

const megabyte = 1 << 20

// UploadSettings names the buckets and limits for image uploads.
type UploadSettings struct {
	ForumBucket         string
	ProfileBucket       string
	MaxForumImageMB     int64
	MaxProfileImageMB   int64
	ProfileCacheControl string
}

var imageExtensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/gif":     "gif",
	"image/svg+xml": "svg",
}

type uploadService struct {
	store    storage.StorageInterface
	settings UploadSettings
	clock    clockwork.Clock
	viewers  viewerResolver
}

func NewUploadService(
	store storage.StorageInterface,
	userRepo repository.UserRepository,
	memberRepo repository.MemberRepository,
	settings UploadSettings,
	clock clockwork.Clock,
) UploadService {
	return &uploadService{
		store:    store,
		settings: settings,
		clock:    clock,
		viewers:  viewerResolver{userRepo: userRepo, memberRepo: memberRepo},
	}
}

func (s *uploadService) UploadForumImage(ctx context.Context, email string, file Upload) (*UploadResult, error) {
	logger.EnterMethod("uploadService.UploadForumImage", "email", email, "size", file.Size)

	contentType := strings.ToLower(file.ContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidFile
	}
	if file.Size <= 0 || file.Size > s.settings.MaxForumImageMB*megabyte {
		return nil, ErrFileTooLarge
	}
	ext := imageExtension(contentType, file.Filename)
	if ext == "" {
		return nil, ErrUnsupportedImage
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if viewer.User == nil {
		return nil, ErrUnknownUser
	}

	key := fmt.Sprintf("%s/%d-%s.%s", viewer.User.ID, s.clock.Now().UnixMilli(), uuid.NewString(), ext)
	return s.put(ctx, s.settings.ForumBucket, key, file, storage.ObjectOptions{ContentType: file.ContentType})
}

// UploadProfileImage stores the member's avatar under their member code,
// replacing any previous image.
func (s *uploadService) UploadProfileImage(ctx context.Context, email string, file Upload) (*UploadResult, error) {
	logger.EnterMethod("uploadService.UploadProfileImage", "email", email, "size", file.Size)

	if strings.ToLower(file.ContentType) != "image/webp" {
		return nil, ErrInvalidFile
	}
	if file.Size <= 0 || file.Size > s.settings.MaxProfileImageMB*megabyte {
		return nil, ErrFileTooLarge
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if viewer.Member == nil || viewer.Member.MemberCode == nil || *viewer.Member.MemberCode == "" {
		return nil, ErrNoMemberCode
	}

	key := *viewer.Member.MemberCode + ".webp"
	return s.put(ctx, s.settings.ProfileBucket, key, file, storage.ObjectOptions{
		ContentType:  "image/webp",
		CacheControl: s.settings.ProfileCacheControl,
		Upsert:       true,
	})
}

func (s *uploadService) put(ctx context.Context, bucket, key string, file Upload, opts storage.ObjectOptions) (*UploadResult, error) {
	logger.ExternalServiceCall("storage", "Put", "bucket", bucket, "key", key)
	err := s.store.Put(ctx, bucket, key, file.Body, opts)
	logger.ExternalServiceResult("storage", "Put", err, "bucket", bucket, "key", key)
	metrics.UploadsTotal.WithLabelValues(bucket, metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	return &UploadResult{
		URL:    s.store.PublicURL(bucket, key),
		Path:   key,
		Bucket: bucket,
	}, nil
}

// imageExtension prefers the declared content type and falls back to the
// file name's extension.
func imageExtension(contentType, filename string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	switch ext {
	case "jpeg":
		return "jpg"
	case "jpg", "png", "webp", "gif", "svg":
		return ext
	}
	return ""
}
