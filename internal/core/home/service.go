// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package home assembles the landing page view of the directory: every
category with its artisan count, and a short list of featured artisans,
with display names already resolved for the negotiated language.
*/
package home

import (
	"context"
	"fmt"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/locale"
	"github.com/taibuivan/sanaa/pkg/pointer"
	"github.com/taibuivan/sanaa/pkg/slice"
)

// FeaturedLimit caps the featured section of the landing page.
const FeaturedLimit = 3

// Overview is the landing page payload.
type Overview struct {
	Language   locale.Lang       `json:"language"`
	Direction  string            `json:"direction"`
	Languages  []locale.Lang     `json:"languages"` // Choices for a language switcher
	Categories []CategorySummary `json:"categories"`
	Featured   []FeaturedArtisan `json:"featured"`
}

// CategorySummary is a category with its localized labels and artisan count.
type CategorySummary struct {
	Category           *directory.Category `json:"category"`
	DisplayName        string              `json:"displayName"`
	DisplayDescription string              `json:"displayDescription"`
	ArtisanCount       int                 `json:"artisanCount"`
}

// FeaturedArtisan is a featured artisan with its localized labels.
type FeaturedArtisan struct {
	Artisan     *directory.Artisan `json:"artisan"`
	DisplayName string             `json:"displayName"`
	DisplayBio  string             `json:"displayBio"`
}

// Service builds [Overview] values from the Directory Store.
type Service struct {
	categories directory.CategoryRepository
	artisans   directory.ArtisanRepository
}

// NewService constructs a new [Service].
func NewService(categories directory.CategoryRepository, artisans directory.ArtisanRepository) *Service {
	return &Service{categories: categories, artisans: artisans}
}

// Overview returns the landing page for lang.
//
// Featured artisans are the first [FeaturedLimit] with featured=1, in
// insertion order. Counts include every artisan naming the category id.
func (service *Service) Overview(ctx context.Context, lang locale.Lang) (*Overview, error) {
	categories, err := service.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("home_service_categories_failed: %w", err)
	}

	artisans, err := service.artisans.ListArtisans(ctx, directory.ArtisanFilter{})
	if err != nil {
		return nil, fmt.Errorf("home_service_artisans_failed: %w", err)
	}

	counts := slice.CountBy(artisans, func(artisan *directory.Artisan) string { return artisan.CategoryID })

	summaries := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		summaries = append(summaries, CategorySummary{
			Category:           category,
			DisplayName:        locale.Select(category.Name(), lang),
			DisplayDescription: locale.Select(description(category), lang),
			ArtisanCount:       counts[category.ID],
		})
	}

	featured := slice.Take(slice.Filter(artisans, (*directory.Artisan).IsFeatured), FeaturedLimit)
	highlights := make([]FeaturedArtisan, 0, len(featured))
	for _, artisan := range featured {
		highlights = append(highlights, FeaturedArtisan{
			Artisan:     artisan,
			DisplayName: locale.Select(artisan.Name(), lang),
			DisplayBio:  locale.Select(artisan.Bio(), lang),
		})
	}

	return &Overview{
		Language:   lang,
		Direction:  locale.Direction(lang),
		Languages:  locale.Supported(),
		Categories: summaries,
		Featured:   highlights,
	}, nil
}

func description(category *directory.Category) locale.Text {
	return locale.Text{
		En: pointer.Val(category.DescriptionEn),
		Fr: pointer.Val(category.DescriptionFr),
		Ar: pointer.Val(category.DescriptionAr),
	}
}
