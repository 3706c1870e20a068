package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"landmarker/internal/infrastructure/database"
	"landmarker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultImagesBucketName = "landmarker-images"

// S3ImageStorage uploads generated images to S3 (or any S3-compatible store via
// S3_ENDPOINT) and returns a public URL for them.
//
// Supported env vars:
//   - IMAGES_BUCKET (default: landmarker-images)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000)
//   - IMAGES_PUBLIC_BASE_URL (optional; CDN/base URL override for returned links)
type S3ImageStorage struct {
	client   *s3.Client
	bucket   string
	baseURL  string
	region   string
	mockMode bool
}

var _ interfaces.IImageStorage = (*S3ImageStorage)(nil)

func NewS3ImageStorage(ctx context.Context) (*S3ImageStorage, error) {
	if isStorageMockEnabled() {
		log.Printf("[storage][s3] mock mode enabled")
		return &S3ImageStorage{mockMode: true}, nil
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ImageStorage{
		client:  client,
		bucket:  getenvDefault("IMAGES_BUCKET", defaultImagesBucketName),
		baseURL: strings.TrimSuffix(os.Getenv("IMAGES_PUBLIC_BASE_URL"), "/"),
		region:  cfg.Region,
	}, nil
}

func (s *S3ImageStorage) Upload(ctx context.Context, key string, data []byte, mimeType string) (interfaces.StoredImage, error) {
	if s.mockMode {
		log.Printf("[storage][s3] mock upload key=%s size=%d", key, len(data))
		return interfaces.StoredImage{Key: key, URL: "mock://" + key}, nil
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return interfaces.StoredImage{}, err
	}
	log.Printf("[storage][s3] upload success key=%s size=%d", key, len(data))

	return interfaces.StoredImage{Key: key, URL: s.publicURL(key)}, nil
}

func (s *S3ImageStorage) publicURL(key string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func isStorageMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
