// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/locale"
	"github.com/taibuivan/sanaa/internal/platform/middleware"
)

func newSeededStore(t *testing.T) *directory.MemoryStore {
	t.Helper()

	store := directory.NewMemoryStore()
	_, err := store.Load(context.Background(), directory.SeedCategories(), directory.SeedArtisans())
	require.NoError(t, err)
	return store
}

func TestService_Overview(t *testing.T) {
	store := newSeededStore(t)
	service := NewService(store, store)

	overview, err := service.Overview(context.Background(), locale.French)
	require.NoError(t, err)

	assert.Equal(t, locale.French, overview.Language)
	assert.Equal(t, "ltr", overview.Direction)
	assert.Equal(t, []locale.Lang{locale.English, locale.French, locale.Arabic}, overview.Languages)

	counts := make(map[string]int)
	for _, summary := range overview.Categories {
		counts[summary.Category.ID] = summary.ArtisanCount
	}
	assert.Equal(t, map[string]int{"cooking": 2, "sewing": 2, "repairs": 1, "cleaning": 1}, counts)
	assert.Equal(t, "Cuisine Traditionnelle", overview.Categories[0].DisplayName)

	names := make([]string, 0, len(overview.Featured))
	for _, featured := range overview.Featured {
		names = append(names, featured.DisplayName)
	}
	assert.Equal(t, []string{"Fatima Benali", "Amina Khelifi", "Nadia Hamidi"}, names)
}

func TestService_OverviewArabic(t *testing.T) {
	store := newSeededStore(t)

	overview, err := NewService(store, store).Overview(context.Background(), locale.Arabic)
	require.NoError(t, err)

	assert.Equal(t, "rtl", overview.Direction)
	assert.Equal(t, "الطبخ التقليدي", overview.Categories[0].DisplayName)
	assert.Equal(t, "فاطمة بن علي", overview.Featured[0].DisplayName)
}

func TestService_OverviewEmptyStore(t *testing.T) {
	store := directory.NewMemoryStore()

	overview, err := NewService(store, store).Overview(context.Background(), locale.English)
	require.NoError(t, err)

	assert.NotNil(t, overview.Categories)
	assert.NotNil(t, overview.Featured)
	assert.Empty(t, overview.Featured)
}

func TestHandler_Overview(t *testing.T) {
	store := newSeededStore(t)
	handler := middleware.Language()(NewHandler(NewService(store, store)).Routes())

	request := httptest.NewRequest(http.MethodGet, "/?lang=ar", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ar", recorder.Header().Get("Content-Language"))

	var body struct {
		Language  string `json:"language"`
		Direction string `json:"direction"`
		Featured  []struct {
			DisplayName string `json:"displayName"`
		} `json:"featured"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ar", body.Language)
	assert.Equal(t, "rtl", body.Direction)
	assert.Len(t, body.Featured, 3)
}
