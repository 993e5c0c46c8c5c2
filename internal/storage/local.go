package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"catalog_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// newFileName keeps the extension of the uploaded file and replaces its name with a uuid.
func newFileName(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}

type LocalFileStore struct {
	log *logrus.Logger
}

func NewLocalFileStore(logger *logrus.Logger) *LocalFileStore {
	return &LocalFileStore{log: logger}
}

var _ domain.FileStore = (*LocalFileStore)(nil)

func (s *LocalFileStore) Store(ctx context.Context, dir, originalName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Errorf("Storage: Failed to create image directory %s: %v", dir, err)
		return "", fmt.Errorf("%w: create directory %s: %v", domain.ErrImageStorage, dir, err)
	}

	fileName := newFileName(originalName)
	target := filepath.Join(dir, fileName)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		s.log.Errorf("Storage: Failed to write image %s: %v", target, err)
		return "", fmt.Errorf("%w: write %s: %v", domain.ErrImageStorage, target, err)
	}

	s.log.Infof("Storage: Stored %d bytes as %s", len(data), target)
	return fileName, nil
}
