// Command gen writes type-safe GORM query helpers for the persistence models.
package main

import (
	"campground/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CampgroundModel{},
		model.CommentModel{},
		model.ReviewModel{},
		model.NotificationModel{},
		model.FollowModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
