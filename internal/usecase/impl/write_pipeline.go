package impl

import (
	"context"
	"log/slog"
	"strings"

	"campground/internal/domain/entity"
	domainerrors "campground/internal/domain/errors"
	"campground/internal/domain/repository"
	"campground/internal/domain/service"
	"campground/internal/errors"
	"campground/internal/usecase"
	"campground/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// writeState is shared by the steps of one create or update.
type writeState struct {
	actor    *entity.Actor
	input    *usecase.CampgroundInput
	id       uuid.UUID          // Target of an update; zero on create.
	existing *entity.Campground // Loaded record of an update.
	uploaded *service.StoredImage
	imageURL string
	location entity.Location
	result   *entity.Campground
}

// writeStep is one fallible stage of a write. Steps run strictly in order and
// the first failure stops the pipeline.
type writeStep struct {
	name string
	run  func(ctx context.Context, state *writeState) error
}

func (srv *campgroundService) runPipeline(ctx context.Context, state *writeState, steps []writeStep) error {
	for _, step := range steps {
		if err := step.run(ctx, state); err != nil {
			srv.log(ctx).Warn("Campground write step failed",
				slog.String("step", step.name),
				slog.Any("error", err),
			)
			srv.discardUpload(ctx, state)

			return err
		}
	}

	return nil
}

func (srv *campgroundService) createSteps() []writeStep {
	return []writeStep{
		{name: "validate", run: srv.validateStep},
		{name: "upload", run: srv.uploadStep},
		{name: "geocode", run: srv.geocodeStep},
		{name: "persist", run: srv.persistNewStep},
		{name: "publish", run: srv.publishStep},
	}
}

func (srv *campgroundService) updateSteps() []writeStep {
	return []writeStep{
		{name: "load", run: srv.loadStep},
		{name: "authorize", run: srv.authorizeStep},
		{name: "validate", run: srv.validateStep},
		{name: "upload", run: srv.uploadStep},
		{name: "geocode", run: srv.geocodeStep},
		{name: "persist", run: srv.persistPatchStep},
	}
}

func (srv *campgroundService) loadStep(ctx context.Context, state *writeState) error {
	campground, err := srv.campgroundRepo.FindByID(ctx, state.id)
	if err != nil {
		return translateCampgroundError(err, "failed to load campground for update")
	}
	state.existing = campground
	state.imageURL = campground.ImageURL

	return nil
}

func (srv *campgroundService) authorizeStep(_ context.Context, state *writeState) error {
	return authorizeCampgroundChange(state.actor, state.existing)
}

func (srv *campgroundService) validateStep(_ context.Context, state *writeState) error {
	if state.actor == nil {
		return domainerrors.ErrUnauthorized
	}
	if state.input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("campground input is required")
	}

	state.input.Name = strings.TrimSpace(state.input.Name)
	state.input.Location = strings.TrimSpace(state.input.Location)

	if err := srv.validate.Struct(state.input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(describeValidationError(err))
	}

	if state.input.Image != nil && !util.IsImageFilename(state.input.Image.Filename) {
		return domainerrors.ErrInvalidImageType
	}

	return nil
}

func (srv *campgroundService) uploadStep(ctx context.Context, state *writeState) error {
	if state.input.Image == nil {
		if state.imageURL == "" {
			state.imageURL = srv.placeholderImageURL
		}

		return nil
	}

	stored, err := srv.imageStore.Store(ctx, state.input.Image)
	if err != nil {
		return errors.Wrap(err, "failed to store campground image")
	}
	state.uploaded = stored
	state.imageURL = stored.URL

	return nil
}

func (srv *campgroundService) geocodeStep(ctx context.Context, state *writeState) error {
	result, err := srv.geocoder.Geocode(ctx, state.input.Location)
	if err != nil {
		return errors.Wrap(err, "failed to geocode campground location")
	}

	location := entity.Location{
		Query:     state.input.Location,
		Address:   result.Address,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}
	if !location.IsComplete() {
		return domainerrors.ErrGeocodeInvalidAddress
	}
	state.location = location

	return nil
}

func (srv *campgroundService) persistNewStep(ctx context.Context, state *writeState) error {
	campground := &entity.Campground{
		Name:        state.input.Name,
		Description: state.input.Description,
		Price:       state.input.Price,
		ImageURL:    state.imageURL,
		Location:    state.location,
		Author:      state.actor.AsAuthor(),
	}

	if err := srv.campgroundRepo.Create(ctx, campground); err != nil {
		return errors.Wrap(err, "failed to create campground")
	}
	state.result = campground

	return nil
}

func (srv *campgroundService) persistPatchStep(ctx context.Context, state *writeState) error {
	patch := &repository.CampgroundPatch{
		Name:        state.input.Name,
		Description: state.input.Description,
		Price:       state.input.Price,
		ImageURL:    state.imageURL,
		Location:    state.location,
	}

	campground, err := srv.campgroundRepo.UpdateCampground(ctx, state.id, patch)
	if err != nil {
		return translateCampgroundError(err, "failed to update campground")
	}
	state.result = campground

	return nil
}

// publishStep queues the follower fan-out. A publish failure is logged and the
// write still succeeds.
func (srv *campgroundService) publishStep(ctx context.Context, state *writeState) error {
	event := &service.CampgroundCreatedEvent{
		RequestID:      requestIDFromContext(ctx),
		CampgroundID:   state.result.ID.String(),
		CampgroundName: state.result.Name,
		AuthorID:       state.result.Author.ID.String(),
		AuthorUsername: state.result.Author.Username,
	}

	if err := srv.publisher.PublishCampgroundCreated(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish campground created event",
			slog.String("campgroundID", event.CampgroundID),
			slog.Any("error", err),
		)
	}

	return nil
}

// discardUpload removes an image uploaded by a write that did not complete.
func (srv *campgroundService) discardUpload(ctx context.Context, state *writeState) {
	if state.uploaded == nil || state.result != nil {
		return
	}

	srv.discardImage(ctx, state.uploaded.URL)
	state.uploaded = nil
}

// discardImage deletes an image the store produced, logging failures.
func (srv *campgroundService) discardImage(ctx context.Context, url string) {
	if url == "" || url == srv.placeholderImageURL {
		return
	}

	if err := srv.imageStore.Delete(context.WithoutCancel(ctx), url); err != nil {
		srv.log(ctx).Warn("Failed to delete campground image",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

func describeValidationError(err error) string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return strings.Join(details, "; ")
}

// translateCampgroundError maps repository sentinels to domain errors.
func translateCampgroundError(err error, message string) error {
	if errors.Is(err, repository.ErrCampgroundNotFound) {
		return domainerrors.ErrCampgroundNotFound
	}

	return errors.Wrap(err, message)
}
