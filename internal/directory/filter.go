// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"math"
	"strings"

	"github.com/taibuivan/sanaa/pkg/pointer"
	"github.com/taibuivan/sanaa/pkg/slice"
)

// AllCategories is the category filter value that disables category filtering.
const AllCategories = "all"

// # Search & Filtering

// ArtisanFilter narrows an artisan listing. Every field is optional and the
// present ones compose with logical AND. The zero value matches everything.
//
// Results keep the store's insertion order; filtering never sorts.
type ArtisanFilter struct {
	// Category keeps artisans whose CategoryID equals it exactly
	// (case-sensitive). Nil, "" and [AllCategories] disable the predicate.
	Category *string

	// Search keeps artisans containing the term in a text field.
	// Latin-script fields (NameEn, NameFr, Location, BioEn, BioFr) compare
	// case-insensitively; Arabic fields (NameAr, BioAr) compare as-is, since
	// case folding has no meaning for Arabic script. Nil and "" disable it.
	Search *string

	// MinRating keeps artisans whose Rating is >= MinRating. Nil and NaN disable it.
	MinRating *float64
}

// HasCategory reports whether the category predicate is active.
func (filter ArtisanFilter) HasCategory() bool {
	category := pointer.Val(filter.Category)
	return category != "" && category != AllCategories
}

// HasSearch reports whether the search predicate is active.
func (filter ArtisanFilter) HasSearch() bool {
	return pointer.Val(filter.Search) != ""
}

// HasMinRating reports whether the rating predicate is active.
func (filter ArtisanFilter) HasMinRating() bool {
	return filter.MinRating != nil && !math.IsNaN(*filter.MinRating)
}

// Matches reports whether the artisan satisfies every active predicate.
func (filter ArtisanFilter) Matches(artisan *Artisan) bool {
	if filter.HasCategory() && artisan.CategoryID != *filter.Category {
		return false
	}

	if filter.HasSearch() && !matchesSearch(artisan, *filter.Search) {
		return false
	}

	if filter.HasMinRating() && artisan.Rating < *filter.MinRating {
		return false
	}

	return true
}

// Apply returns the artisans that match, preserving their order.
func (filter ArtisanFilter) Apply(artisans []*Artisan) []*Artisan {
	matched := slice.Filter(artisans, filter.Matches)
	if matched == nil {
		return []*Artisan{}
	}
	return matched
}

// matchesSearch implements the mixed-script substring rule of [ArtisanFilter.Search].
func matchesSearch(artisan *Artisan, term string) bool {
	lowered := strings.ToLower(term)

	latin := []string{artisan.NameEn, artisan.NameFr, artisan.Location, artisan.BioEn, artisan.BioFr}
	for _, field := range latin {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}

	return strings.Contains(artisan.NameAr, term) || strings.Contains(artisan.BioAr, term)
}
