package domain

import (
	"context"
	"time"
)

// Strategy is one concrete method of attempting to reach a goal state.
// Strategies own no state; an ordered slice of them encodes preference,
// most reliable and least invasive first.
type Strategy struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// VerificationProbe is an independent check that the goal state was actually
// reached. It must not rely on a strategy's self-reported success.
//
// Check returns whether the goal state is observable and, when it is not,
// a short human-readable reason.
type VerificationProbe struct {
	Retries  int
	Interval time.Duration
	Check    func(ctx context.Context) (ok bool, reason string)
}
