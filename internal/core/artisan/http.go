// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artisan

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	requestutil "github.com/taibuivan/sanaa/internal/platform/request"
	"github.com/taibuivan/sanaa/internal/platform/respond"
	"github.com/taibuivan/sanaa/pkg/convert"
	"github.com/taibuivan/sanaa/pkg/pointer"
)

// Handler implements the HTTP layer for artisans.
type Handler struct {
	service *Service
	metrics *metrics.Collector
}

// NewHandler constructs a new artisan [Handler]. collector may be nil.
func NewHandler(service *Service, collector *metrics.Collector) *Handler {
	return &Handler{service: service, metrics: collector}
}

// Routes returns a [chi.Router] mounted at /api/artisans.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArtisans)
	router.Get("/{id}", handler.getArtisan)

	return router
}

/*
GET /api/artisans.

Request:
  - query: category, search, minRating (all optional)

Response:
  - 200: []Artisan, possibly empty
*/
func (handler *Handler) listArtisans(writer http.ResponseWriter, request *http.Request) {
	filter := FilterFromRequest(request)

	artisans, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.metrics.ArtisansListed(filter.HasCategory() || filter.HasSearch() || filter.HasMinRating())
	respond.OK(writer, artisans)
}

/*
GET /api/artisans/{id}.

Response:
  - 200: Artisan
  - 404: no artisan with that id
*/
func (handler *Handler) getArtisan(writer http.ResponseWriter, request *http.Request) {
	artisan, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artisan)
}

// FilterFromRequest builds an [directory.ArtisanFilter] from the query string.
// Empty values are absent; a minRating that is not a number is ignored.
func FilterFromRequest(request *http.Request) directory.ArtisanFilter {
	return directory.ArtisanFilter{
		Category:  pointer.NilIfZero(requestutil.Query(request, "category")),
		Search:    pointer.NilIfZero(requestutil.Query(request, "search")),
		MinRating: convert.ToFloat64P(requestutil.Query(request, "minRating")),
	}
}
