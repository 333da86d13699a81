// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/sanaa/internal/platform/request"
	"github.com/taibuivan/sanaa/internal/platform/respond"
)

// Handler implements the HTTP layer for inquiries.
type Handler struct {
	service *Service
}

// NewHandler constructs a new contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /api/contact.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

// submitRequest is the JSON body of POST /api/contact.
type submitRequest struct {
	ArtisanID   string  `json:"artisanId"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone"`
	Message     string  `json:"message"`
}

/*
POST /api/contact.

Request:
  - body: submitRequest

Response:
  - 201: ContactMessage with id and createdAt
  - 400: invalid JSON or rule violations (details per field)
  - 429: same sender contacted the same artisan too recently
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Submit(request.Context(), Input{
		ArtisanID:   input.ArtisanID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Message:     input.Message,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}
