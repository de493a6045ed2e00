package imagestore

import (
	"context"
	"io"
	"log/slog"
	"time"

	"campground/config"
	"campground/internal/domain/constants"
	"campground/internal/domain/service"
	"campground/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/gcerrors"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultBucketURL = "mem://"
)

type closableStore interface {
	service.ImageStore
	io.Closer
}

// StoreParams holds dependencies for ImageStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore creates an ImageStore based on configuration
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.ImageStore
	logger := params.Logger
	if cfg == nil {
		cfg = &config.ImageStoreConfig{}
	}

	var store closableStore
	var err error

	switch cfg.Provider {
	case "", constants.ImageStoreProviderBlob:
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			logger.Warn("Image store bucket not configured, using in-memory bucket")
			bucketURL = defaultBucketURL
		}
		logger.Info("Using blob image store", slog.String("bucket_url", bucketURL))

		store, err = OpenBlobStore(params.Ctx, bucketURL, cfg.PublicBaseURL, cfg.Timeout, logger)

	case constants.ImageStoreProviderS3:
		logger.Info("Using S3 image store")

		store, err = NewS3Store(params.Ctx, cfg.S3, cfg.PublicBaseURL, cfg.Timeout, logger)

	default:
		return nil, errors.Errorf("unknown image store provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ImageStore")

			return store.Close()
		},
	})

	return store, nil
}

func isNotFound(err error) bool {
	return gcerrors.Code(err) == gcerrors.NotFound
}

// Module provides the image store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
