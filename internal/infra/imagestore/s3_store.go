package imagestore

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"campground/config"
	deliverycontext "campground/internal/delivery/context"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxImageBytes bounds how much of an upload is buffered before sending it to S3.
const maxImageBytes = 10 << 20

// s3Client is the subset of the S3 API the store uses
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Store implements service.ImageStore on an S3-compatible bucket
type s3Store struct {
	client  s3Client
	bucket  string
	urls    urlMapper
	timeout time.Duration
	logger  *slog.Logger
}

// NewS3Store builds an S3 client from cfg; a custom endpoint enables MinIO and other compatible stores
func NewS3Store(ctx context.Context, cfg *config.S3Config, publicBaseURL string, timeout time.Duration, logger *slog.Logger) (*s3Store, error) {
	if cfg == nil || cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required for s3 image store")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Store(client, cfg.Bucket, publicBaseURL, timeout, logger), nil
}

func newS3Store(client s3Client, bucket, publicBaseURL string, timeout time.Duration, logger *slog.Logger) *s3Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &s3Store{
		client:  client,
		bucket:  bucket,
		urls:    newURLMapper(publicBaseURL),
		timeout: timeout,
		logger:  logger,
	}
}

func (s *s3Store) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Store buffers the upload and puts it under a new key
func (s *s3Store) Store(ctx context.Context, upload *service.ImageUpload) (*service.StoredImage, error) {
	data, err := io.ReadAll(io.LimitReader(upload.Content, maxImageBytes+1))
	if err != nil {
		return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
	}
	if len(data) > maxImageBytes {
		return nil, domainerrors.ErrImageUploadFailed.WithDetails("image exceeds " + util.FormatBytes(maxImageBytes))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := newObjectKey(upload.Filename, time.Now())
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.log(ctx).Warn("[ImageStore] S3 upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
	}

	s.log(ctx).Debug("[ImageStore] Image stored in S3",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &service.StoredImage{Key: key, URL: s.urls.toURL(key)}, nil
}

// Delete removes the object behind url; foreign URLs are ignored
func (s *s3Store) Delete(ctx context.Context, url string) error {
	key, ok := s.urls.toKey(url)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return errors.Wrapf(err, "failed to delete image %s", key)
	}

	return nil
}

// Close is a no-op; the S3 client holds no resources
func (s *s3Store) Close() error {
	return nil
}
