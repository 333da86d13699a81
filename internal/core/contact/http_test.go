// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/directory"
)

func postContact(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Submit(t *testing.T) {
	router := NewHandler(NewService(directory.NewMemoryStore(), nil, 0, nil, discardLogger())).Routes()

	recorder := postContact(t, router, `{
		"artisanId": "any-id",
		"clientName": "Yasmine",
		"clientEmail": "yasmine@example.com",
		"message": "Do you cater for weddings in June?"
	}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "any-id", body["artisanId"])
	assert.Nil(t, body["clientPhone"])

	createdAt, ok := body["createdAt"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, createdAt)
	assert.NoError(t, err)
}

func TestHandler_SubmitRejected(t *testing.T) {
	router := NewHandler(NewService(directory.NewMemoryStore(), nil, 0, nil, discardLogger())).Routes()

	t.Run("invalid json", func(t *testing.T) {
		recorder := postContact(t, router, `{"artisanId":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("short name", func(t *testing.T) {
		recorder := postContact(t, router, `{
			"artisanId": "a1",
			"clientName": "J",
			"clientEmail": "j@example.com",
			"message": "Hello there, are you free?"
		}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "clientName", body.Details[0].Field)
	})
}

func TestHandler_SubmitCooldown(t *testing.T) {
	service := NewService(directory.NewMemoryStore(), newMemoryCooldown(), time.Minute, nil, discardLogger())
	router := NewHandler(service).Routes()

	payload := `{
		"artisanId": "a1",
		"clientName": "Yasmine",
		"clientEmail": "yasmine@example.com",
		"message": "Are you available next Saturday?"
	}`

	assert.Equal(t, http.StatusCreated, postContact(t, router, payload).Code)

	recorder := postContact(t, router, payload)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RATE_LIMITED")
}
