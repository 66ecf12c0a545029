package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dralafandy/Cura-dental-app/internal/storage"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
	"github.com/google/uuid"
)

const thumbnailSize = 256

// StoredImage names the blobs written for one radiograph upload
type StoredImage struct {
	Key          string
	ThumbnailKey string
	ContentType  string
}

// ImageService validates radiograph uploads, builds thumbnails and writes both to the blob store
type ImageService struct {
	store storage.Store
}

func NewImageService(store storage.Store) *ImageService {
	return &ImageService{store: store}
}

// SaveRadiograph stores the original bytes and a thumbnail under radiographs/<patient>/
func (s *ImageService) SaveRadiograph(ctx context.Context, patientID uint, filename string, data []byte) (*StoredImage, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no blob store configured", ErrConfiguration)
	}
	if int64(len(data)) > storage.MaxFileSize() {
		return nil, validationError("image exceeds %d bytes", storage.MaxFileSize())
	}

	ext := strings.ToLower(filepath.Ext(filename))
	var format imaging.Format
	var contentType string
	switch ext {
	case ".jpg", ".jpeg":
		format, contentType = imaging.JPEG, "image/jpeg"
	case ".png":
		format, contentType = imaging.PNG, "image/png"
	default:
		return nil, validationError("unsupported image format %q (only JPG/PNG)", ext)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, validationError("could not decode image: %v", err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	name := uuid.New().String()
	stored := &StoredImage{
		Key:          fmt.Sprintf("radiographs/%d/%s%s", patientID, name, ext),
		ThumbnailKey: fmt.Sprintf("radiographs/%d/%s_thumb%s", patientID, name, ext),
		ContentType:  contentType,
	}

	if err := s.store.Save(ctx, stored.Key, data, contentType); err != nil {
		return nil, fmt.Errorf("%w: radiograph: %w", ErrStorage, err)
	}
	if err := s.store.Save(ctx, stored.ThumbnailKey, thumbBuf.Bytes(), contentType); err != nil {
		s.Remove(ctx, stored.Key)
		return nil, fmt.Errorf("%w: thumbnail: %w", ErrStorage, err)
	}
	return stored, nil
}

// Open streams a stored blob
func (s *ImageService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no blob store configured", ErrConfiguration)
	}
	rc, err := s.store.Open(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, fmt.Errorf("%w: image %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: image: %w", ErrStorage, err)
	}
	return rc, nil
}

// Remove deletes blobs on a best-effort basis; failures are logged
func (s *ImageService) Remove(ctx context.Context, keys ...string) {
	if s.store == nil {
		return
	}
	cleanupCtx := context.WithoutCancel(ctx)
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.store.Delete(cleanupCtx, key); err != nil {
			logger.Warn("[Image] Failed to delete blob", "key", key, "error", err)
		}
	}
}
