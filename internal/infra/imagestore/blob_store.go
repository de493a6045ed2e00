package imagestore

import (
	"context"
	"io"
	"log/slog"
	"time"

	deliverycontext "campground/internal/delivery/context"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/util"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // azblob:// buckets
	_ "gocloud.dev/blob/fileblob"  // file:// buckets
	_ "gocloud.dev/blob/gcsblob"   // gs:// buckets
	_ "gocloud.dev/blob/memblob"   // mem:// buckets
	_ "gocloud.dev/blob/s3blob"    // s3:// buckets
)

// blobStore implements service.ImageStore on any gocloud blob bucket
type blobStore struct {
	bucket  *blob.Bucket
	urls    urlMapper
	timeout time.Duration
	logger  *slog.Logger
}

// OpenBlobStore opens the bucket at bucketURL
func OpenBlobStore(ctx context.Context, bucketURL, publicBaseURL string, timeout time.Duration, logger *slog.Logger) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBlobStore(bucket, publicBaseURL, timeout, logger), nil
}

// NewBlobStore wraps an already opened bucket
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string, timeout time.Duration, logger *slog.Logger) *blobStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &blobStore{
		bucket:  bucket,
		urls:    newURLMapper(publicBaseURL),
		timeout: timeout,
		logger:  logger,
	}
}

func (s *blobStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Store streams the upload into the bucket under a new key
func (s *blobStore) Store(ctx context.Context, upload *service.ImageUpload) (*service.StoredImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := newObjectKey(upload.Filename, time.Now())

	// Cancelling the writer context before Close discards a partial object.
	writeCtx, abort := context.WithCancel(ctx)
	defer abort()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: upload.ContentType})
	if err != nil {
		return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
	}

	written, copyErr := io.Copy(writer, upload.Content)
	if copyErr != nil {
		abort()
	}
	closeErr := writer.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		s.log(ctx).Warn("[ImageStore] Upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
	}

	s.log(ctx).Debug("[ImageStore] Image stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(written)),
	)

	return &service.StoredImage{Key: key, URL: s.urls.toURL(key)}, nil
}

// Delete removes the object behind url; foreign URLs and missing objects are ignored
func (s *blobStore) Delete(ctx context.Context, url string) error {
	key, ok := s.urls.toKey(url)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.bucket.Delete(ctx, key); err != nil && !isNotFound(err) {
		return errors.Wrapf(err, "failed to delete image %s", key)
	}

	return nil
}

// Close releases the bucket
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
