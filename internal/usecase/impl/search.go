package impl

import (
	"regexp"
	"strings"

	"campground/internal/domain/entity"
	"campground/internal/domain/repository"
	"campground/internal/usecase"
)

// normalizeSearch drops invalid UTF-8 and NUL bytes from raw search input and
// trims it. Neither can be part of a stored name.
func normalizeSearch(raw string) string {
	pattern := strings.ToValidUTF8(raw, "")
	pattern = strings.ReplaceAll(pattern, "\x00", "")

	return strings.TrimSpace(pattern)
}

// searchFilter builds the store filter for a raw search pattern. The pattern is
// matched as a literal substring; regex metacharacters never reach the store unescaped.
func searchFilter(raw string) repository.CampgroundFilter {
	pattern := normalizeSearch(raw)
	if pattern == "" {
		return repository.CampgroundFilter{}
	}

	return repository.CampgroundFilter{NamePattern: regexp.QuoteMeta(pattern)}
}

// totalPages is ceil(total / pageSize); an empty result has zero pages.
func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// normalizePage clamps a requested page to the 1-based range.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

func buildCampgroundPage(query usecase.SearchQuery, campgrounds []*entity.Campground, total int64, pageSize int) *usecase.CampgroundPage {
	pattern := normalizeSearch(query.Pattern)
	searched := pattern != ""

	if campgrounds == nil {
		campgrounds = []*entity.Campground{}
	}

	return &usecase.CampgroundPage{
		Campgrounds: campgrounds,
		CurrentPage: normalizePage(query.Page),
		TotalPages:  totalPages(total, pageSize),
		TotalCount:  total,
		Search:      pattern,
		Searched:    searched,
		NoMatch:     searched && total == 0,
	}
}
