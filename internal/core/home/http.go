// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/sanaa/internal/platform/ctxutil"
	"github.com/taibuivan/sanaa/internal/platform/respond"
)

// Handler implements the HTTP layer for the landing page.
type Handler struct {
	service *Service
}

// NewHandler constructs a new home [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/home. The language
// middleware must run first; without it the overview is in English.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getOverview)
	return router
}

/*
GET /api/home?lang=.

Response:
  - 200: Overview in the negotiated language
*/
func (handler *Handler) getOverview(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.Overview(request.Context(), ctxutil.GetLanguage(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, overview)
}
