// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	"github.com/taibuivan/sanaa/pkg/pointer"
)

// memoryCooldown is an in-process stand-in for Redis.
type memoryCooldown struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released []string
}

func newMemoryCooldown() *memoryCooldown {
	return &memoryCooldown{held: make(map[string]bool)}
}

func (cooldown *memoryCooldown) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	cooldown.mu.Lock()
	defer cooldown.mu.Unlock()

	if cooldown.err != nil {
		return false, cooldown.err
	}
	if cooldown.held[key] {
		return false, nil
	}
	cooldown.held[key] = true
	return true, nil
}

func (cooldown *memoryCooldown) Release(_ context.Context, key string) error {
	cooldown.mu.Lock()
	defer cooldown.mu.Unlock()

	delete(cooldown.held, key)
	cooldown.released = append(cooldown.released, key)
	return nil
}

type failingRepository struct{}

func (failingRepository) CreateContactMessage(context.Context, directory.NewContactMessage) (*directory.ContactMessage, error) {
	return nil, errors.New("disk full")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() Input {
	return Input{
		ArtisanID:   "artisan-1",
		ClientName:  "Yasmine",
		ClientEmail: "yasmine@example.com",
		Message:     "Are you available next Saturday?",
	}
}

func TestService_Submit(t *testing.T) {
	service := NewService(directory.NewMemoryStore(), nil, 0, nil, discardLogger())

	input := validInput()
	input.ClientPhone = pointer.To("+213 555 999 000")

	before := time.Now().UTC()
	message, err := service.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, "artisan-1", message.ArtisanID)
	assert.Equal(t, "+213 555 999 000", *message.ClientPhone)
	assert.False(t, message.CreatedAt.Before(before.Add(-time.Second)))
}

func TestService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		fields []string
	}{
		{name: "short name", mutate: func(in *Input) { in.ClientName = "J" }, fields: []string{"clientName"}},
		{name: "two letter name accepted", mutate: func(in *Input) { in.ClientName = "Jo" }, fields: nil},
		{name: "bad email", mutate: func(in *Input) { in.ClientEmail = "not-an-email" }, fields: []string{"clientEmail"}},
		{name: "short message", mutate: func(in *Input) { in.Message = "Hello" }, fields: []string{"message"}},
		{name: "ten character message accepted", mutate: func(in *Input) { in.Message = "0123456789" }, fields: nil},
		{name: "long message accepted", mutate: func(in *Input) { in.Message = strings.Repeat("x", 5001) }, fields: nil},
		{name: "long name accepted", mutate: func(in *Input) { in.ClientName = strings.Repeat("N", 101) }, fields: nil},
		{name: "email without dotted domain", mutate: func(in *Input) { in.ClientEmail = "jo@localhost" }, fields: []string{"clientEmail"}},
		{name: "missing artisan", mutate: func(in *Input) { in.ArtisanID = "" }, fields: []string{"artisanId"}},
		{
			name: "everything wrong",
			mutate: func(in *Input) {
				in.ClientName = ""
				in.ClientEmail = ""
				in.Message = ""
			},
			fields: []string{"clientName", "clientEmail", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(directory.NewMemoryStore(), nil, 0, nil, discardLogger())
			input := validInput()
			tt.mutate(&input)

			_, err := service.Submit(context.Background(), input)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.ElementsMatch(t, tt.fields, fields)
		})
	}
}

func TestService_Cooldown(t *testing.T) {
	cooldown := newMemoryCooldown()
	collector := metrics.NewCollector("sanaa_test")
	service := NewService(directory.NewMemoryStore(), cooldown, time.Minute, collector, discardLogger())

	_, err := service.Submit(context.Background(), validInput())
	require.NoError(t, err)

	// Same sender, different case, same artisan.
	repeat := validInput()
	repeat.ClientEmail = "YASMINE@example.com"
	_, err = service.Submit(context.Background(), repeat)
	assert.True(t, apperr.HasCode(err, "RATE_LIMITED"))

	// Another artisan is not affected.
	other := validInput()
	other.ArtisanID = "artisan-2"
	_, err = service.Submit(context.Background(), other)
	assert.NoError(t, err)
}

func TestService_CooldownBackendDown(t *testing.T) {
	cooldown := newMemoryCooldown()
	cooldown.err = errors.New("connection refused")
	service := NewService(directory.NewMemoryStore(), cooldown, time.Minute, nil, discardLogger())

	for n := 0; n < 2; n++ {
		_, err := service.Submit(context.Background(), validInput())
		require.NoError(t, err)
	}
}

func TestService_ReleasesCooldownOnStoreFailure(t *testing.T) {
	cooldown := newMemoryCooldown()
	service := NewService(failingRepository{}, cooldown, time.Minute, nil, discardLogger())

	_, err := service.Submit(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, apperr.As(err))

	key := CooldownKey("artisan-1", "yasmine@example.com")
	assert.Equal(t, []string{key}, cooldown.released)
	assert.False(t, cooldown.held[key])
}

func TestCooldownKey(t *testing.T) {
	assert.Equal(t, "contact:cooldown:a1:jo@example.com", CooldownKey("a1", "  Jo@Example.com "))
}
