package impl

import (
	"context"
	"log/slog"

	"campground/internal/domain/entity"
	"campground/internal/domain/repository"
	"campground/internal/errors"

	"github.com/google/uuid"
)

// cascadeStep removes one layer of a campground. Dependents always go before the parent.
type cascadeStep struct {
	name string
	run  func(ctx context.Context, repos repository.RepositoryFactory, campground *entity.Campground) error
}

var cascadeSteps = []cascadeStep{
	{
		name: "comments",
		run: func(ctx context.Context, repos repository.RepositoryFactory, campground *entity.Campground) error {
			_, err := repos.NewCommentRepository().DeleteByIDs(ctx, campground.CommentIDs)

			return err
		},
	},
	{
		name: "reviews",
		run: func(ctx context.Context, repos repository.RepositoryFactory, campground *entity.Campground) error {
			_, err := repos.NewReviewRepository().DeleteByIDs(ctx, campground.ReviewIDs)

			return err
		},
	},
	{
		name: "campground",
		run: func(ctx context.Context, repos repository.RepositoryFactory, campground *entity.Campground) error {
			return repos.NewCampgroundRepository().Delete(ctx, campground.ID)
		},
	},
}

// DeleteCampground removes a campground with its comments and reviews in one
// transaction, then deletes its image.
func (srv *campgroundService) DeleteCampground(ctx context.Context, actor *entity.Actor, id uuid.UUID) error {
	campground, err := srv.campgroundRepo.FindByID(ctx, id)
	if err != nil {
		return translateCampgroundError(err, "failed to load campground for deletion")
	}

	if err := authorizeCampgroundChange(actor, campground); err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		// Reload inside the transaction so dependents added since the first read are included.
		current, err := repos.NewCampgroundRepository().FindByID(ctx, id)
		if err != nil {
			return translateCampgroundError(err, "failed to reload campground for deletion")
		}

		for _, step := range cascadeSteps {
			if err := step.run(ctx, repos, current); err != nil {
				srv.log(ctx).Error("Cascade deletion step failed",
					slog.String("campgroundID", id.String()),
					slog.String("step", step.name),
					slog.Any("error", err),
				)

				return errors.Wrapf(err, "failed to delete %s", step.name)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.discardImage(ctx, campground.ImageURL)

	srv.log(ctx).Info("Campground deleted",
		slog.String("campgroundID", id.String()),
		slog.String("actorID", actor.ID.String()),
		slog.Int("comments", len(campground.CommentIDs)),
		slog.Int("reviews", len(campground.ReviewIDs)),
	)

	return nil
}
