package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// strategyAt returns a strategy that records its execution and fails unless
// it is the succeeding one.
func strategyAt(name string, ran *[]string, err error) domain.Strategy {
	return domain.Strategy{
		Name: name,
		Run: func(_ context.Context) error {
			*ran = append(*ran, name)
			return err
		},
	}
}

func TestRun_FirstVerifiedStrategyWins(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	var ran []string
	verified := false
	strategies := []domain.Strategy{
		strategyAt("first", &ran, zerr.New("installer rejected flags")),
		strategyAt("second", &ran, nil),
		strategyAt("third", &ran, nil),
	}
	probe := domain.VerificationProbe{
		Retries: 1,
		Check: func(_ context.Context) (bool, string) {
			// The goal state appears only after the second strategy ran.
			verified = len(ran) >= 2
			if !verified {
				return false, "target file missing"
			}
			return true, ""
		},
	}

	res := r.Run(context.Background(), "install", strategies, probe)

	require.True(t, res.Success)
	assert.Contains(t, res.Message, "second")
	// Diagnostics cover exactly the strategies before the verified one.
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "first")
	assert.Contains(t, res.Diagnostics[0], "installer rejected flags")
	// The third strategy never ran.
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestRun_SelfReportedSuccessIsNotTrusted(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	var ran []string
	strategies := []domain.Strategy{
		// Returns nil but the probe never confirms.
		strategyAt("claims-success", &ran, nil),
	}
	probe := domain.VerificationProbe{
		Retries: 2,
		Check: func(_ context.Context) (bool, string) {
			return false, "port closed"
		},
	}

	res := r.Run(context.Background(), "test", strategies, probe)

	require.False(t, res.Success)
	assert.Contains(t, res.Err, "all strategies exhausted")
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "completed")
	assert.Contains(t, res.Diagnostics[0], "port closed")
}

func TestRun_ExhaustionYieldsOneRecordPerStrategy(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	var ran []string
	strategies := []domain.Strategy{
		strategyAt("a", &ran, zerr.New("a failed")),
		strategyAt("b", &ran, zerr.New("b failed")),
		strategyAt("c", &ran, zerr.New("c failed")),
	}
	probe := domain.VerificationProbe{
		Retries: 1,
		Check:   func(_ context.Context) (bool, string) { return false, "nothing there" },
	}

	res := r.Run(context.Background(), "install", strategies, probe)

	require.False(t, res.Success)
	assert.Contains(t, res.Err, "3 of 3 strategies attempted")
	assert.Len(t, res.Diagnostics, len(strategies))
	assert.Equal(t, []string{"a", "b", "c"}, ran)
}

func TestRun_TimeoutCapturedAndFallsThrough(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	var ran []string
	strategies := []domain.Strategy{
		{
			Name:    "hangs",
			Timeout: 10 * time.Millisecond,
			Run: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		},
		strategyAt("fallback", &ran, nil),
	}
	verified := false
	probe := domain.VerificationProbe{
		Retries: 1,
		Check: func(_ context.Context) (bool, string) {
			if verified {
				return true, ""
			}
			verified = len(ran) > 0
			return verified, "still waiting"
		},
	}

	res := r.Run(context.Background(), "create portable image", strategies, probe)

	require.True(t, res.Success)
	require.Len(t, res.Diagnostics, 1)
	assert.Contains(t, res.Diagnostics[0], "timeout exceeded")
}

func TestRun_ProbeRetriesWithinOneStrategy(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	var ran []string
	calls := 0
	probe := domain.VerificationProbe{
		Retries:  10,
		Interval: time.Millisecond,
		Check: func(_ context.Context) (bool, string) {
			calls++
			if calls < 10 {
				return false, "endpoint unreachable"
			}
			return true, ""
		},
	}

	res := r.Run(context.Background(), "test", []domain.Strategy{strategyAt("launch", &ran, nil)}, probe)

	require.True(t, res.Success)
	assert.Equal(t, 10, calls)
	assert.Empty(t, res.Diagnostics)
}

func TestRun_EmptyStrategyList(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	res := r.Run(context.Background(), "install", nil, domain.VerificationProbe{})

	require.False(t, res.Success)
	assert.Contains(t, res.Err, "all strategies exhausted")
}

func TestRun_ContextCancellationStopsIteration(t *testing.T) {
	r := pipeline.NewRunner(nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	var ran []string
	strategies := []domain.Strategy{
		{
			Name: "first",
			Run: func(_ context.Context) error {
				ran = append(ran, "first")
				cancel()
				return zerr.New("interrupted")
			},
		},
		strategyAt("second", &ran, nil),
	}
	probe := domain.VerificationProbe{
		Retries: 1,
		Check:   func(_ context.Context) (bool, string) { return false, "" },
	}

	res := r.Run(ctx, "install", strategies, probe)

	require.False(t, res.Success)
	assert.Equal(t, []string{"first"}, ran)
	// The error reports how many strategies actually ran, not the list size.
	assert.Contains(t, res.Err, "1 of 2 strategies attempted")
	require.Len(t, res.Diagnostics, 2)
	assert.Contains(t, res.Diagnostics[1], "skipped")
}
