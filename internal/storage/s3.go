package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"project-catalog/internal/config"
)

// S3Store writes blobs to an S3-compatible bucket and returns URLs under
// the configured public base.
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		// Path-style keeps custom S3-compatible endpoints working.
		o.UsePathStyle = true
	})

	return &S3Store{
		client:     client,
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimSuffix(cfg.S3PublicURLBase, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, data []byte, mimeType, originalName string) (*SaveResult, error) {
	key := fmt.Sprintf("%s/%s%s", iconsDir, uuid.New().String(), extensionFor(mimeType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob to s3: %w", err)
	}

	return &SaveResult{
		PublicURL:  s.publicBase + "/" + key,
		StorageKey: key,
	}, nil
}
