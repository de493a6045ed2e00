package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/service"
	"campground/internal/usecase"
)

// inlinePublisher runs the fan-out in a background goroutine of the API process.
// It is the default when no broker is configured.
type inlinePublisher struct {
	notifier usecase.NotificationUsecase
	timeout  time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewInlinePublisher creates a publisher that hands events straight to the notification use case
func NewInlinePublisher(notifier usecase.NotificationUsecase, timeout time.Duration, logger *slog.Logger) *inlinePublisher {
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &inlinePublisher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
	}
}

// PublishCampgroundCreated starts the fan-out and returns immediately.
// The run outlives the request but keeps its request id and logger.
func (p *inlinePublisher) PublishCampgroundCreated(ctx context.Context, event *service.CampgroundCreatedEvent) error {
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		result, err := p.notifier.FanOut(runCtx, event)
		if err != nil {
			logger.Error("[InlinePubSub] Fan-out failed",
				slog.String("campground_id", event.CampgroundID),
				slog.Any("error", err),
			)

			return
		}

		logger.Debug("[InlinePubSub] Fan-out finished",
			slog.String("campground_id", event.CampgroundID),
			slog.Int("created", result.Created),
			slog.Int("failed", result.Failed),
		)
	}()

	return nil
}

// Close waits for in-flight fan-outs to finish
func (p *inlinePublisher) Close() error {
	p.wg.Wait()

	return nil
}
