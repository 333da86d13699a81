// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category serves the directory's category listing and lookups.

Categories are seeded at startup and read over HTTP. Creation is reachable
only from the operator CLI.
*/
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/validate"
)

// # Service Layer

// Service implements the category use cases on top of the Directory Store.
type Service struct {
	repository directory.CategoryRepository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository directory.CategoryRepository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// List returns every category in insertion order.
func (service *Service) List(ctx context.Context) ([]*directory.Category, error) {
	categories, err := service.repository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category_service_list_failed: %w", err)
	}
	return categories, nil
}

/*
Get retrieves a single category by its identifier.

Returns:
  - *directory.Category: the stored category
  - error: apperr NOT_FOUND when no category has that id
*/
func (service *Service) Get(ctx context.Context, id string) (*directory.Category, error) {
	category, err := service.repository.FindCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category_service_get_failed: %w", err)
	}
	if category == nil {
		return nil, apperr.NotFound("Category")
	}
	return category, nil
}

// Create validates and stores a new category. The store assigns the id.
func (service *Service) Create(ctx context.Context, data directory.NewCategory) (*directory.Category, error) {
	v := &validate.Validator{}
	v.Required("nameEn", data.NameEn).
		Required("nameFr", data.NameFr).
		Required("nameAr", data.NameAr).
		Required("icon", data.Icon).
		MaxLen("nameEn", data.NameEn, 100).
		MaxLen("nameFr", data.NameFr, 100).
		MaxLen("nameAr", data.NameAr, 100)

	if err := v.Err(); err != nil {
		return nil, err
	}

	category, err := service.repository.CreateCategory(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("category_service_create_failed: %w", err)
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("name_en", category.NameEn),
	)
	return category, nil
}
