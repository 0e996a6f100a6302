// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pacing spaces consecutive calls to a rate-limited external API.
package pacing

import (
	"context"
	"time"
)

// Gate enforces a minimum interval between successive calls. Wait blocks
// only for the unelapsed remainder of the interval, so a slow caller is not
// penalized further. The zero interval disables pacing. Gate is not safe for
// concurrent use; the pipeline is strictly sequential.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate returns a gate with the given minimum interval between calls.
func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// Wait blocks until at least the gate interval has passed since the previous
// Wait returned. The first call never blocks. If the context is cancelled
// while waiting, Wait returns ctx.Err().
func (g *Gate) Wait(ctx context.Context) error {
	if !g.last.IsZero() && g.interval > 0 {
		remaining := g.interval - time.Since(g.last)
		if remaining > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(remaining):
			}
		}
	}
	g.last = time.Now()
	return nil
}
