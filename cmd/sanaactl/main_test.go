// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/platform/apperr"
)

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
}

func TestRun_CreateCategory(t *testing.T) {
	memoryEnv(t)

	var out bytes.Buffer
	err := run(context.Background(), "create-category", []string{
		"-name-en", "Pottery", "-name-fr", "Poterie", "-name-ar", "الفخار", "-icon", "pottery",
	}, strings.NewReader(""), &out)
	require.NoError(t, err)

	var created map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Poterie", created["nameFr"])
	assert.Nil(t, created["descriptionEn"])
}

func TestRun_CreateArtisanFromStdin(t *testing.T) {
	memoryEnv(t)

	document := `{
		"nameEn": "Yacine Haddad", "nameFr": "Yacine Haddad", "nameAr": "ياسين حداد",
		"categoryId": "repairs", "location": "Setif", "phone": "+213 555 000 111",
		"priceRange": "$$", "profileImage": "https://example.com/yacine.svg"
	}`

	var out bytes.Buffer
	err := run(context.Background(), "create-artisan", nil, strings.NewReader(document), &out)
	require.NoError(t, err)

	var created map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	assert.EqualValues(t, 0, created["rating"])
	assert.EqualValues(t, 0, created["featured"])
}

func TestRun_CreateArtisanRejectsUnknownFields(t *testing.T) {
	memoryEnv(t)

	err := run(context.Background(), "create-artisan", nil, strings.NewReader(`{"rating": 5}`), &bytes.Buffer{})
	assert.ErrorContains(t, err, "decode artisan")
}

func TestRun_CreateAccount(t *testing.T) {
	memoryEnv(t)

	var out bytes.Buffer
	err := run(context.Background(), "create-account", []string{"-username", "admin", "-password", "s3cret-pass"}, nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"username": "admin"`)
	assert.NotContains(t, out.String(), "s3cret-pass")

	err = run(context.Background(), "create-account", []string{"-username", "ad", "-password", "x"}, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, "Validation failed\n  username: Minimum 3 characters\n  password: Minimum 8 characters", describe(err))
	assert.NotNil(t, apperr.As(err))
}

func TestRun_Seed(t *testing.T) {
	memoryEnv(t)
	assert.NoError(t, run(context.Background(), "seed", nil, nil, &bytes.Buffer{}))
}

func TestRun_MigrateNeedsPostgres(t *testing.T) {
	memoryEnv(t)
	assert.ErrorContains(t, run(context.Background(), "migrate", nil, nil, &bytes.Buffer{}), "STORAGE_DRIVER=postgres")
}

func TestRun_UnknownCommand(t *testing.T) {
	memoryEnv(t)
	assert.ErrorContains(t, run(context.Background(), "drop-everything", nil, nil, &bytes.Buffer{}), "unknown command")
}
