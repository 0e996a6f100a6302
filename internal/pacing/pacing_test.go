// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateFirstCallDoesNotBlock(t *testing.T) {
	g := NewGate(time.Hour)

	start := time.Now()
	require.NoError(t, g.Wait(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestGateEnforcesInterval(t *testing.T) {
	const interval = 50 * time.Millisecond
	g := NewGate(interval)

	require.NoError(t, g.Wait(context.Background()))
	start := time.Now()
	require.NoError(t, g.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestGateWaitsOnlyRemainder(t *testing.T) {
	const interval = 50 * time.Millisecond
	g := NewGate(interval)

	require.NoError(t, g.Wait(context.Background()))
	time.Sleep(interval) // interval already elapsed while "working"

	start := time.Now()
	require.NoError(t, g.Wait(context.Background()))
	assert.Less(t, time.Since(start), interval)
}

func TestGateZeroIntervalDisablesPacing(t *testing.T) {
	g := NewGate(0)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestGateHonorsCancellation(t *testing.T) {
	g := NewGate(time.Hour)
	require.NoError(t, g.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
