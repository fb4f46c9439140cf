package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
)

const MaxImageSize = 5 << 20

// ImageUploader is satisfied by helpers.GCSUploader.
type ImageUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// MediaService stores course cover images. A nil Uploader disables uploads.
type MediaService struct {
	Uploader ImageUploader
	Logger   *logrus.Logger
}

func NewMediaService(uploader ImageUploader, logger *logrus.Logger) *MediaService {
	return &MediaService{Uploader: uploader, Logger: logger}
}

type ImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadCourseImage stores an image under courses/<adminID>/ and returns its URL.
func (s *MediaService) UploadCourseImage(ctx context.Context, adminID string, in ImageInput) (string, error) {
	if s.Uploader == nil {
		return "", apperr.Unavailable("image upload is not configured")
	}
	if !strings.HasPrefix(strings.ToLower(in.ContentType), "image/") {
		return "", apperr.Validation(map[string]string{"image": "must be an image"})
	}
	if in.Size <= 0 || in.Size > MaxImageSize {
		return "", apperr.Validation(map[string]string{"image": "must be at most 5 MiB"})
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	objectPath := filepath.ToSlash(filepath.Join("courses", adminID, uuid.NewString()+ext))
	url, err := s.Uploader.Upload(ctx, objectPath, in.ContentType, io.LimitReader(in.Body, MaxImageSize))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin_id", adminID).Error("upload course image failed")
		}
		return "", apperr.Store("upload image", err)
	}
	return url, nil
}
