package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"rv-portal/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageKey is where a unit's primary photo lives in the bucket.
func ImageKey(stockNumber string) string {
	return "units/" + stockNumber + "/primary.jpg"
}

// S3Store serves unit images through presigned GET URLs and stores signature captures.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

func (s *S3Store) ImageURL(ctx context.Context, stockNumber string) string {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ImageKey(stockNumber)),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		slog.Warn("failed to presign unit image", "stock_number", stockNumber, "error", err.Error())
		return ""
	}
	return req.URL
}

func (s *S3Store) PutSignature(ctx context.Context, key string, png []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(png),
		ContentLength: aws.Int64(int64(len(png))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload signature %s: %w", key, err)
	}
	return key, nil
}

func (s *S3Store) DeleteSignature(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete signature %s: %w", key, err)
	}
	return nil
}

// StaticStore is used when object storage is disabled: image URLs come from a fixed
// pattern and signatures stay inline in the order only.
type StaticStore struct {
	pattern string
}

func NewStaticStore(pattern string) *StaticStore {
	if pattern == "" || !strings.Contains(pattern, "%s") {
		pattern = "/images/units/%s.jpg"
	}
	return &StaticStore{pattern: pattern}
}

func (s *StaticStore) ImageURL(_ context.Context, stockNumber string) string {
	return fmt.Sprintf(s.pattern, url.PathEscape(stockNumber))
}

func (s *StaticStore) PutSignature(_ context.Context, _ string, _ []byte) (string, error) {
	return "", nil
}

func (s *StaticStore) DeleteSignature(_ context.Context, _ string) error {
	return nil
}
