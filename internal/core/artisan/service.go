// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artisan serves artisan listings, search and profile lookups.

Listing accepts three optional query parameters that compose with AND:

  - category: exact category id; "all" disables it.
  - search: substring over names, location and biographies.
  - minRating: inclusive lower bound on the editorial rating.

Unparsable minRating values are ignored rather than rejected.
*/
package artisan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/validate"
)

// priceRanges are the accepted values of [directory.Artisan.PriceRange].
var priceRanges = map[string]bool{"$": true, "$$": true, "$$$": true}

// # Service Layer

// Service implements the artisan use cases on top of the Directory Store.
type Service struct {
	repository directory.ArtisanRepository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository directory.ArtisanRepository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// List returns the artisans matching filter, in insertion order.
func (service *Service) List(ctx context.Context, filter directory.ArtisanFilter) ([]*directory.Artisan, error) {
	artisans, err := service.repository.ListArtisans(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("artisan_service_list_failed: %w", err)
	}
	return artisans, nil
}

// Get retrieves a single artisan, mapping absence to apperr NOT_FOUND.
func (service *Service) Get(ctx context.Context, id string) (*directory.Artisan, error) {
	artisan, err := service.repository.FindArtisan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artisan_service_get_failed: %w", err)
	}
	if artisan == nil {
		return nil, apperr.NotFound("Artisan")
	}
	return artisan, nil
}

/*
Create validates and stores a new artisan profile.

Description: The category id is not checked against existing categories.
The store starts rating, review count and featured at zero.

Returns:
  - *directory.Artisan: the stored profile with its generated id
  - error: VALIDATION_ERROR on rule violations, storage faults otherwise
*/
func (service *Service) Create(ctx context.Context, data directory.NewArtisan) (*directory.Artisan, error) {
	v := &validate.Validator{}
	v.Required("nameEn", data.NameEn).
		Required("nameFr", data.NameFr).
		Required("nameAr", data.NameAr).
		Required("categoryId", data.CategoryID).
		Required("location", data.Location).
		Required("phone", data.Phone).
		Required("profileImage", data.ProfileImage).
		Custom("priceRange", !priceRanges[data.PriceRange], "Must be one of $, $$ or $$$")

	if data.Email != nil && *data.Email != "" {
		v.Email("email", *data.Email)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	artisan, err := service.repository.CreateArtisan(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("artisan_service_create_failed: %w", err)
	}

	service.logger.Info("artisan_created",
		slog.String("artisan_id", artisan.ID),
		slog.String("category_id", artisan.CategoryID),
	)
	return artisan, nil
}
