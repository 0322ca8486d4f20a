// Package pipeline implements the verified operation pipeline: try an
// ordered list of strategies to reach a goal state, confirm each attempt
// through an independent probe, and fall back on verification failure.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes strategies sequentially until one is verified.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run iterates the strategies in order. After each attempt it consults the
// probe; the first verified attempt wins and later strategies never run. A
// strategy failure (including timeout) is captured as a diagnostic and
// triggers fallback, never an abort. When every strategy is exhausted the
// result carries one diagnostic record per failed attempt, in order.
//
// The probe is the only authority on success. A strategy returning nil
// without the probe confirming the goal state still counts as a failed
// attempt.
func (r *Runner) Run(ctx context.Context, goal string, strategies []domain.Strategy, probe domain.VerificationProbe) domain.OperationResult {
	if len(strategies) == 0 {
		return domain.Failed(zerr.With(zerr.With(domain.ErrAllStrategiesExhausted, "goal", goal), "strategies", 0), nil)
	}

	var diags []string
	attempted := 0
	for _, st := range strategies {
		if ctx.Err() != nil {
			diags = append(diags, fmt.Sprintf("%s: skipped: %v", st.Name, ctx.Err()))
			break
		}
		attempted++

		r.logger.Info(fmt.Sprintf("attempting %s via %s", goal, st.Name))
		attemptErr := r.attempt(ctx, st)
		if attemptErr != nil {
			r.logger.Warn(fmt.Sprintf("strategy %s failed: %v", st.Name, attemptErr))
		}

		// Verify regardless of the attempt outcome. A timed-out strategy may
		// still have reached the goal state.
		ok, reason := r.verify(ctx, probe)
		if ok {
			return domain.Succeeded(fmt.Sprintf("%s reached via %s", goal, st.Name), diags)
		}

		diags = append(diags, attemptRecord(st.Name, attemptErr, reason))
	}

	msg := fmt.Sprintf("%s: %d of %d strategies attempted", goal, attempted, len(strategies))
	err := zerr.With(zerr.Wrap(domain.ErrAllStrategiesExhausted, msg), "attempted", attempted)
	return domain.Failed(err, diags)
}

// attempt runs one strategy under its timeout.
func (r *Runner) attempt(ctx context.Context, st domain.Strategy) error {
	if st.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, st.Timeout)
		defer cancel()
	}

	err := st.Run(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return zerr.With(zerr.Wrap(domain.ErrTimeoutExceeded, st.Name), "timeout", st.Timeout.String())
	}
	return err
}

// verify polls the probe up to Retries times with Interval spacing. It
// returns the last failure reason when the goal state never appears.
func (r *Runner) verify(ctx context.Context, probe domain.VerificationProbe) (bool, string) {
	tries := probe.Retries
	if tries < 1 {
		tries = 1
	}

	reason := ""
	for i := 0; i < tries; i++ {
		if i > 0 {
			if err := sleep(ctx, probe.Interval); err != nil {
				return false, reason
			}
		}
		ok, why := probe.Check(ctx)
		if ok {
			return true, ""
		}
		if why != "" {
			reason = why
		}
	}
	return false, reason
}

// attemptRecord renders one failed attempt as a single ordered diagnostic.
func attemptRecord(name string, attemptErr error, reason string) string {
	outcome := "completed"
	if attemptErr != nil {
		outcome = attemptErr.Error()
	}
	if reason == "" {
		reason = "goal state not observed"
	}
	return fmt.Sprintf("%s: %s; verification: %s", name, outcome, reason)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
