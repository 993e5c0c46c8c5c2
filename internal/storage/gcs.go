package storage

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"catalog_service/internal/domain"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
)

// GCSFileStore writes images to a bucket, using dir as the object prefix.
type GCSFileStore struct {
	client *gcs.Client
	bucket string
	log    *logrus.Logger
}

func NewGCSFileStore(client *gcs.Client, bucket string, logger *logrus.Logger) *GCSFileStore {
	return &GCSFileStore{
		client: client,
		bucket: strings.TrimSpace(bucket),
		log:    logger,
	}
}

var _ domain.FileStore = (*GCSFileStore)(nil)

func objectName(dir, fileName string) string {
	prefix := strings.Trim(strings.TrimSpace(dir), "/")
	if prefix == "" {
		return fileName
	}
	return path.Join(prefix, fileName)
}

func (s *GCSFileStore) Store(ctx context.Context, dir, originalName string, data []byte) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("%w: bucket is empty", domain.ErrImageStorage)
	}

	fileName := newFileName(originalName)
	object := objectName(dir, fileName)

	w := s.client.Bucket(s.bucket).Object(object).If(gcs.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		s.log.Errorf("Storage: Failed to write gs://%s/%s: %v", s.bucket, object, err)
		return "", fmt.Errorf("%w: write gs://%s/%s: %v", domain.ErrImageStorage, s.bucket, object, err)
	}
	if err := w.Close(); err != nil {
		s.log.Errorf("Storage: Failed to finalize gs://%s/%s: %v", s.bucket, object, err)
		return "", fmt.Errorf("%w: close gs://%s/%s: %v", domain.ErrImageStorage, s.bucket, object, err)
	}

	s.log.Infof("Storage: Stored %d bytes as gs://%s/%s", len(data), s.bucket, object)
	return fileName, nil
}
