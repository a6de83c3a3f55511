package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/samrambhakamela/mela-api/internal/domain"
)

// GalleryService serves the photo gallery straight from the object
// bucket. Nothing is persisted in the database; the bucket listing is
// the source of truth.
type GalleryService struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewGalleryService(client *minio.Client, bucket, baseURL string) *GalleryService {
	return &GalleryService{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func (s *GalleryService) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}

func (s *GalleryService) List(ctx context.Context) ([]domain.Photo, error) {
	var photos []domain.Photo

	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("s.client.ListObjects -> %w", object.Err)
		}

		photos = append(photos, domain.Photo{
			Key:        object.Key,
			URL:        s.publicURL(object.Key),
			Size:       object.Size,
			UploadedAt: object.LastModified,
		})
	}

	return photos, nil
}

// Upload stores the photo under a fresh key, keeping the original
// extension so the public URL serves with the right content type.
func (s *GalleryService) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (domain.Photo, error) {
	key := uuid.NewString() + path.Ext(filename)

	info, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.client.PutObject -> %w", err)
	}

	return domain.Photo{
		Key:  info.Key,
		URL:  s.publicURL(info.Key),
		Size: info.Size,
	}, nil
}

func (s *GalleryService) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s.client.RemoveObject -> %w", err)
	}

	return nil
}
