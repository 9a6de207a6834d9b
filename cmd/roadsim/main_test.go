package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/logging"
)

func TestRunIsDeterministic(t *testing.T) {
	cfg := config.Default()
	a, err := run(context.Background(), cfg, logging.Nop(), 7, 4, 600, 2)
	require.NoError(t, err)
	b, err := run(context.Background(), cfg, logging.Nop(), 7, 4, 600, 0)
	require.NoError(t, err)

	require.Len(t, a, 4)
	assert.Equal(t, a, b)
	for i, r := range a {
		assert.Equal(t, i, r.Episode)
		assert.Equal(t, uint64(7+i), r.Seed)
		assert.LessOrEqual(t, r.Ticks, 600)
		assert.Greater(t, r.Ticks, 0)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(ctx, config.Default(), logging.Nop(), 1, 2, 100, 0)
	require.ErrorIs(t, err, context.Canceled)
}
