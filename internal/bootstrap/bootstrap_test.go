// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/config"
)

func TestOpenStorage_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{StorageDriver: config.DriverMemory}

	storage, err := OpenStorage(context.Background(), cfg, true, logger)
	require.NoError(t, err)
	defer storage.Close()

	assert.IsType(t, &directory.MemoryStore{}, storage.Store)
	assert.Nil(t, storage.Ping)
}

func TestOpenRedis_Disabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := OpenRedis(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewLogger(t *testing.T) {
	assert.True(t, NewLogger(true).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewLogger(false).Enabled(context.Background(), slog.LevelDebug))
}
