// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artisan

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	"github.com/taibuivan/sanaa/pkg/pointer"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()

	store := directory.NewMemoryStore()
	_, err := store.Load(context.Background(), directory.SeedCategories(), directory.SeedArtisans())
	require.NoError(t, err)

	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validArtisan() directory.NewArtisan {
	return directory.NewArtisan{
		NameEn:       "Yacine Haddad",
		NameFr:       "Yacine Haddad",
		NameAr:       "ياسين حداد",
		CategoryID:   "repairs",
		BioEn:        "Carpenter.",
		BioFr:        "Menuisier.",
		BioAr:        "نجار.",
		ServicesEn:   []string{"Furniture"},
		ServicesFr:   []string{"Meubles"},
		ServicesAr:   []string{"أثاث"},
		Location:     "Setif",
		Phone:        "+213 555 000 111",
		PriceRange:   "$$",
		ProfileImage: "https://example.com/yacine.svg",
	}
}

func TestService_Get(t *testing.T) {
	service := newSeededService(t)

	artisans, err := service.List(context.Background(), directory.ArtisanFilter{})
	require.NoError(t, err)
	require.Len(t, artisans, 6)

	artisan, err := service.Get(context.Background(), artisans[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Fatima Benali", artisan.NameEn)

	_, err = service.Get(context.Background(), "does-not-exist")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	service := newSeededService(t)

	created, err := service.Create(context.Background(), validArtisan())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.ReviewCount)
	assert.Equal(t, directory.FeaturedNo, created.Featured)
	assert.Equal(t, []string{}, created.PortfolioImages)
}

func TestService_CreateUnknownCategory(t *testing.T) {
	service := newSeededService(t)

	data := validArtisan()
	data.CategoryID = "pottery"

	created, err := service.Create(context.Background(), data)
	require.NoError(t, err)

	listed, err := service.List(context.Background(), directory.ArtisanFilter{Category: pointer.To("pottery")})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*directory.NewArtisan)
		field  string
	}{
		{name: "missing name", mutate: func(a *directory.NewArtisan) { a.NameAr = "" }, field: "nameAr"},
		{name: "missing category", mutate: func(a *directory.NewArtisan) { a.CategoryID = " " }, field: "categoryId"},
		{name: "bad price range", mutate: func(a *directory.NewArtisan) { a.PriceRange = "$$$$" }, field: "priceRange"},
		{name: "bad email", mutate: func(a *directory.NewArtisan) { a.Email = pointer.To("yacine") }, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newSeededService(t)
			data := validArtisan()
			tt.mutate(&data)

			_, err := service.Create(context.Background(), data)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

func TestFilterFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   directory.ArtisanFilter
	}{
		{name: "none", target: "/", want: directory.ArtisanFilter{}},
		{name: "empty values", target: "/?category=&search=&minRating=", want: directory.ArtisanFilter{}},
		{
			name:   "all present",
			target: "/?category=cooking&search=tajine&minRating=4.5",
			want: directory.ArtisanFilter{
				Category:  pointer.To("cooking"),
				Search:    pointer.To("tajine"),
				MinRating: pointer.To(4.5),
			},
		},
		{name: "unparsable rating", target: "/?minRating=high", want: directory.ArtisanFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFromRequest(httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_List(t *testing.T) {
	router := NewHandler(newSeededService(t), metrics.NewCollector("sanaa_test")).Routes()

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "all", target: "/", want: []string{"Fatima Benali", "Amina Khelifi", "Karim Mansouri", "Salma Bouazza", "Nadia Hamidi", "Leila Meziane"}},
		{name: "category", target: "/?category=cooking", want: []string{"Fatima Benali", "Nadia Hamidi"}},
		{name: "category all", target: "/?category=all", want: []string{"Fatima Benali", "Amina Khelifi", "Karim Mansouri", "Salma Bouazza", "Nadia Hamidi", "Leila Meziane"}},
		{name: "search", target: "/?search=COUSCOUS", want: []string{"Fatima Benali"}},
		{name: "min rating", target: "/?minRating=4.8", want: []string{"Fatima Benali", "Amina Khelifi", "Nadia Hamidi"}},
		{name: "combined", target: "/?category=sewing&minRating=4.6", want: []string{"Amina Khelifi"}},
		{name: "no match", target: "/?category=cleaning&minRating=5", want: []string{}},
		{name: "garbage rating ignored", target: "/?category=repairs&minRating=x", want: []string{"Karim Mansouri"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, http.StatusOK, recorder.Code)

			var artisans []directory.Artisan
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &artisans))
			require.NotNil(t, artisans)

			names := make([]string, 0, len(artisans))
			for _, artisan := range artisans {
				names = append(names, artisan.NameEn)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	service := newSeededService(t)
	router := NewHandler(service, nil).Routes()

	artisans, err := service.List(context.Background(), directory.ArtisanFilter{})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/"+artisans[2].ID, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Karim Mansouri", body["nameEn"])
	assert.Equal(t, "repairs", body["categoryId"])
	assert.Nil(t, body["email"])
	assert.EqualValues(t, 0, body["featured"])

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
