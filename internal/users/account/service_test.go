// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/sec"
)

func newTestService() *Service {
	service := NewService(directory.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	service.hash = func(password string) (string, error) {
		return sec.HashPasswordCost(password, bcrypt.MinCost)
	}
	return service
}

func TestService_Register(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	account, err := service.Register(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "admin", account.Username)
	assert.NotEqual(t, "s3cret-pass", account.Password)
	assert.True(t, sec.CheckPasswordHash("s3cret-pass", account.Password))

	byID, err := service.Get(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, byID)

	byName, err := service.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byName.ID)
}

func TestService_RegisterDuplicate(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	_, err = service.Register(ctx, "admin", "another-pass")
	assert.True(t, apperr.HasCode(err, "CONFLICT"))
}

func TestService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		field    string
	}{
		{name: "short username", username: "ab", password: "long-enough", field: "username"},
		{name: "long username", username: strings.Repeat("u", 51), password: "long-enough", field: "username"},
		{name: "short password", username: "admin", password: "short", field: "password"},
		{name: "password over bcrypt limit", username: "admin", password: strings.Repeat("p", 73), field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().Register(context.Background(), tt.username, tt.password)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

func TestService_GetMissing(t *testing.T) {
	service := newTestService()

	_, err := service.Get(context.Background(), "nope")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	_, err = service.GetByUsername(context.Background(), "nope")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

func TestService_Authenticate(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	ok, err := service.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Authenticate(ctx, "admin", "wrong-pass")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = service.Authenticate(ctx, "ghost", "s3cret-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}
