package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPacerSpacesCalls(t *testing.T) {
	pacer := NewPacer(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, pacer.Wait(context.Background()))
	require.NoError(t, pacer.Wait(context.Background()))
	require.NoError(t, pacer.Wait(context.Background()))
	elapsed := time.Since(start)

	require.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestPacerZeroIntervalNeverWaits(t *testing.T) {
	pacer := NewPacer(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestPacerObservesCancellation(t *testing.T) {
	pacer := NewPacer(time.Minute)
	require.NoError(t, pacer.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, pacer.Wait(ctx), context.DeadlineExceeded)
}
